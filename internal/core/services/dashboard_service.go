package services

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/core/domain"
)

// DashboardService computes the admin dashboard view. Everything is
// recomputed per call; nothing is cached.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Overview holds the per-status complaint counts
type Overview struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
	Reopened   int64 `json:"reopened"`
}

// ComplaintStub is the short complaint form embedded in distributions
type ComplaintStub struct {
	ComplaintID string        `json:"complaintId"`
	Status      domain.Status `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// CategoryBucket groups complaints of one category
type CategoryBucket struct {
	Category   string          `json:"_id"`
	Count      int64           `json:"count"`
	Complaints []ComplaintStub `json:"complaints"`
}

// CategoryCount is a (category, count) pair inside a trend point
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// TrendPoint summarizes one day of the last-7-days series
type TrendPoint struct {
	Date            string          `json:"_id"`
	Total           int64           `json:"total"`
	Resolved        int64           `json:"resolved"`
	CategoryData    []CategoryCount `json:"categoryData"`
	AvgResponseTime *float64        `json:"avgResponseTime"`
	ReopenCount     int64           `json:"reopenCount"`
}

// MonthlyGroup is one (status, category) cell of a monthly bucket
type MonthlyGroup struct {
	Status     domain.Status              `json:"status"`
	Category   domain.Category            `json:"category"`
	Count      int64                      `json:"count"`
	Complaints []*models.ComplaintSummary `json:"complaints"`
}

// MonthlyBucket rolls up one calendar month
type MonthlyBucket struct {
	Month      string         `json:"_id"`
	Statuses   []MonthlyGroup `json:"statuses"`
	TotalCount int64          `json:"totalCount"`
}

// DashboardData is the full dashboard payload
type DashboardData struct {
	Overview             Overview                   `json:"overview"`
	CategoryDistribution []CategoryBucket           `json:"categoryDistribution"`
	Trends               []TrendPoint               `json:"trends"`
	MonthlyComplaints    []MonthlyBucket            `json:"monthlyComplaints"`
	RecentComplaints     []*models.ComplaintSummary `json:"recentComplaints"`
}

// Summary returns the dashboard view as of now
func (s *DashboardService) Summary(ctx context.Context) (*DashboardData, error) {
	data := &DashboardData{}

	// Status counts
	if err := s.db.WithContext(ctx).Model(&models.Complaint{}).Count(&data.Overview.Total).Error; err != nil {
		return nil, err
	}
	statusCounts := map[domain.Status]*int64{
		domain.StatusPending:    &data.Overview.Pending,
		domain.StatusInProgress: &data.Overview.InProgress,
		domain.StatusResolved:   &data.Overview.Resolved,
		domain.StatusReopened:   &data.Overview.Reopened,
	}
	for status, target := range statusCounts {
		if err := s.db.WithContext(ctx).Model(&models.Complaint{}).
			Where("status = ?", status).
			Count(target).Error; err != nil {
			return nil, err
		}
	}

	// One full load feeds the category, monthly and trend rollups
	var complaints []*models.Complaint
	if err := s.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("complaint_timeline.id ASC") }).
		Order("created_at ASC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}

	data.CategoryDistribution = buildCategoryDistribution(complaints)
	data.Trends = buildTrends(complaints, time.Now().AddDate(0, 0, -7))
	data.MonthlyComplaints = buildMonthlyRollup(complaints)

	// Recent complaints
	var recent []*models.Complaint
	if err := s.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("complaint_timeline.id ASC") }).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	data.RecentComplaints = make([]*models.ComplaintSummary, len(recent))
	for i, c := range recent {
		data.RecentComplaints[i] = c.ToSummary()
	}

	return data, nil
}

// buildCategoryDistribution groups complaints per category, ascending
// by category name, each bucket carrying short complaint stubs.
func buildCategoryDistribution(complaints []*models.Complaint) []CategoryBucket {
	buckets := make(map[string]*CategoryBucket)
	for _, c := range complaints {
		key := string(c.Category)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &CategoryBucket{Category: key}
			buckets[key] = bucket
		}
		bucket.Count++
		bucket.Complaints = append(bucket.Complaints, ComplaintStub{
			ComplaintID: c.ComplaintID,
			Status:      c.Status,
			CreatedAt:   c.CreatedAt,
		})
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]CategoryBucket, len(keys))
	for i, key := range keys {
		result[i] = *buckets[key]
	}
	return result
}

// buildTrends summarizes complaints created since the cutoff into one
// point per day, ascending by date.
func buildTrends(complaints []*models.Complaint, since time.Time) []TrendPoint {
	type trendAcc struct {
		point         TrendPoint
		categories    map[string]int64
		responseHours float64
		responseCount int64
	}

	days := make(map[string]*trendAcc)
	for _, c := range complaints {
		if c.CreatedAt.Before(since) {
			continue
		}
		date := c.CreatedAt.Format("2006-01-02")
		acc, ok := days[date]
		if !ok {
			acc = &trendAcc{point: TrendPoint{Date: date}, categories: make(map[string]int64)}
			days[date] = acc
		}
		acc.point.Total++
		acc.categories[string(c.Category)]++
		if c.Status == domain.StatusResolved {
			acc.point.Resolved++
		}
		if c.Status == domain.StatusReopened {
			acc.point.ReopenCount++
		}
		if resolvedAt, ok := firstResolvedAt(c); ok {
			acc.responseHours += resolvedAt.Sub(c.CreatedAt).Hours()
			acc.responseCount++
		}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]TrendPoint, len(dates))
	for i, date := range dates {
		acc := days[date]
		categories := make([]string, 0, len(acc.categories))
		for category := range acc.categories {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			acc.point.CategoryData = append(acc.point.CategoryData, CategoryCount{
				Category: category,
				Count:    acc.categories[category],
			})
		}
		if acc.responseCount > 0 {
			avg := acc.responseHours / float64(acc.responseCount)
			acc.point.AvgResponseTime = &avg
		}
		result[i] = acc.point
	}
	return result
}

// firstResolvedAt finds the timestamp of the first Resolved timeline
// entry, the moment the complaint was answered.
func firstResolvedAt(c *models.Complaint) (time.Time, bool) {
	for _, entry := range c.Timeline {
		if entry.Status == domain.StatusResolved {
			return entry.Timestamp, true
		}
	}
	return time.Time{}, false
}

// buildMonthlyRollup groups complaints per calendar month, newest
// month first, with nested (status, category) groups.
func buildMonthlyRollup(complaints []*models.Complaint) []MonthlyBucket {
	type cellKey struct {
		status   domain.Status
		category domain.Category
	}

	months := make(map[string]map[cellKey][]*models.ComplaintSummary)
	for _, c := range complaints {
		month := c.CreatedAt.Format("2006-01")
		cells, ok := months[month]
		if !ok {
			cells = make(map[cellKey][]*models.ComplaintSummary)
			months[month] = cells
		}
		key := cellKey{status: c.Status, category: c.Category}
		cells[key] = append(cells[key], c.ToSummary())
	}

	monthKeys := make([]string, 0, len(months))
	for month := range months {
		monthKeys = append(monthKeys, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(monthKeys)))

	result := make([]MonthlyBucket, len(monthKeys))
	for i, month := range monthKeys {
		bucket := MonthlyBucket{Month: month}
		cells := months[month]

		keys := make([]cellKey, 0, len(cells))
		for key := range cells {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(a, b int) bool {
			if keys[a].status != keys[b].status {
				return keys[a].status < keys[b].status
			}
			return keys[a].category < keys[b].category
		})

		for _, key := range keys {
			group := MonthlyGroup{
				Status:     key.status,
				Category:   key.category,
				Count:      int64(len(cells[key])),
				Complaints: cells[key],
			}
			bucket.Statuses = append(bucket.Statuses, group)
			bucket.TotalCount += group.Count
		}
		result[i] = bucket
	}
	return result
}
