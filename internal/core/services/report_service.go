package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/core/domain"
)

// ReportService generates filtered complaint reports with analytics
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ReportFilter narrows a report. Nil dates mean no range; empty or
// "All" status/category means no filter.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	Category  string
}

// KeyCount is a generic (key, count) distribution entry
type KeyCount struct {
	Key   string `json:"_id"`
	Count int64  `json:"count"`
}

// DayCount is one day of the report timeline series
type DayCount struct {
	Date  string `json:"_id"`
	Count int64  `json:"count"`
}

// Analytics is the aggregate section of a report
type Analytics struct {
	TotalComplaints      int        `json:"totalComplaints"`
	StatusDistribution   []KeyCount `json:"statusDistribution"`
	CategoryDistribution []KeyCount `json:"categoryDistribution"`
	TimelineData         []DayCount `json:"timelineData"`
}

// Generate returns complaints matching the filter (newest first) plus
// the analytics over the same set.
func (s *ReportService) Generate(ctx context.Context, filter ReportFilter) ([]*models.ComplaintSummary, *Analytics, error) {
	var complaints []*models.Complaint
	if err := s.scope(ctx, filter).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("complaint_timeline.id ASC") }).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, nil, err
	}

	summaries := make([]*models.ComplaintSummary, len(complaints))
	for i, c := range complaints {
		summaries[i] = c.ToSummary()
	}

	analytics := &Analytics{TotalComplaints: len(complaints)}

	var err error
	if analytics.StatusDistribution, err = s.distribution(ctx, filter, "status"); err != nil {
		return nil, nil, err
	}
	if analytics.CategoryDistribution, err = s.distribution(ctx, filter, "category"); err != nil {
		return nil, nil, err
	}

	var days []DayCount
	if err := s.scope(ctx, filter).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS count").
		Group("date").
		Order("date ASC").
		Scan(&days).Error; err != nil {
		return nil, nil, err
	}
	analytics.TimelineData = FillMissingDates(days, filter.StartDate, filter.EndDate)

	return summaries, analytics, nil
}

// scope applies the report filter to a complaints query
func (s *ReportService) scope(ctx context.Context, filter ReportFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Complaint{})
	if filter.StartDate != nil && filter.EndDate != nil {
		// end date is inclusive: cover the whole calendar day
		query = query.Where("created_at >= ? AND created_at < ?", *filter.StartDate, filter.EndDate.AddDate(0, 0, 1))
	}
	if filter.Status != "" && filter.Status != domain.FilterAll {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" && filter.Category != domain.FilterAll {
		query = query.Where("category = ?", filter.Category)
	}
	return query
}

// distribution counts matching complaints grouped by the given column,
// ascending by key.
func (s *ReportService) distribution(ctx context.Context, filter ReportFilter, column string) ([]KeyCount, error) {
	var counts []KeyCount
	err := s.scope(ctx, filter).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Order(column + " ASC").
		Scan(&counts).Error
	return counts, err
}

// FillMissingDates expands a per-day series so every calendar day
// between start and end (inclusive) appears exactly once, zero-filled.
// Without a full range the raw series is returned untouched.
func FillMissingDates(days []DayCount, start, end *time.Time) []DayCount {
	if start == nil || end == nil {
		return days
	}

	counts := make(map[string]int64, len(days))
	for _, day := range days {
		counts[day.Date] = day.Count
	}

	filled := []DayCount{}
	for d := *start; !d.After(*end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		filled = append(filled, DayCount{Date: date, Count: counts[date]})
	}
	return filled
}
