package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/core/domain"
)

// sortColumns maps API sort keys to real columns. Anything outside
// this map falls back to created_at so callers can never inject SQL.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"complaintId": "complaint_id",
	"status":      "status",
	"category":    "category",
	"title":       "title",
}

// complaintRepository implements ComplaintRepository interface
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// Create creates a new complaint together with its seeded timeline
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

// GetByComplaintID gets a complaint by its public identifier
func (r *complaintRepository) GetByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("complaint_timeline.id ASC") }).
		Where("complaint_id = ?", complaintID).
		First(&complaint).Error
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListByUserName lists a user's complaints, newest first
func (r *complaintRepository) ListByUserName(ctx context.Context, userName string) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	err := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("complaint_timeline.id ASC") }).
		Where("user_name = ?", userName).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// List lists complaints matching the filter
func (r *complaintRepository) List(ctx context.Context, filter ComplaintFilter) ([]*models.Complaint, error) {
	query := r.db.WithContext(ctx).
		Preload("Timeline", func(db *gorm.DB) *gorm.DB { return db.Order("complaint_timeline.id ASC") }).
		Model(&models.Complaint{})

	if filter.Status != "" && filter.Status != domain.FilterAll {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" && filter.Category != domain.FilterAll {
		query = query.Where("category = ?", filter.Category)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	var complaints []*models.Complaint
	err := query.Order(column + " " + direction).Find(&complaints).Error
	return complaints, err
}

// NextComplaintID allocates the next sequential complaint identifier.
// The counter row is claimed with a row lock inside a transaction, so
// concurrent submissions never receive the same number.
func (r *complaintRepository) NextComplaintID(ctx context.Context) (string, error) {
	var id string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter models.ComplaintCounter
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&counter).Error; err != nil {
			return err
		}
		counter.Value++
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}
		id = FormatComplaintID(counter.Value)
		return nil
	})
	return id, err
}

// SeedCounter creates the counter row if it does not exist, starting
// from the highest complaint number already on record. The C-prefix
// plus fixed zero padding makes the lexicographic maximum the numeric
// maximum as well.
func (r *complaintRepository) SeedCounter(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ComplaintCounter{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		var last string
		tx.Model(&models.Complaint{}).
			Select("complaint_id").
			Order("complaint_id DESC").
			Limit(1).
			Scan(&last)

		return tx.Create(&models.ComplaintCounter{ID: 1, Value: ParseComplaintSequence(last)}).Error
	})
}

// AppendStatus sets the status and appends the matching timeline entry
// in a single transaction, then returns the reloaded complaint.
func (r *complaintRepository) AppendStatus(ctx context.Context, complaintID string, status domain.Status, comment string, at time.Time) (*models.Complaint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var complaint models.Complaint
		if err := tx.Where("complaint_id = ?", complaintID).First(&complaint).Error; err != nil {
			return err
		}
		if err := tx.Model(&complaint).Update("status", status).Error; err != nil {
			return err
		}
		entry := models.TimelineEntry{
			ComplaintRef: complaint.ID,
			Status:       status,
			Comment:      comment,
			Timestamp:    at,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByComplaintID(ctx, complaintID)
}

// FormatComplaintID renders a sequence number as a public complaint ID
func FormatComplaintID(seq int64) string {
	return fmt.Sprintf("C%05d", seq)
}

// ParseComplaintSequence extracts the numeric part of a complaint ID,
// returning 0 for an empty or malformed value.
func ParseComplaintSequence(complaintID string) int64 {
	trimmed := strings.TrimPrefix(complaintID, "C")
	if trimmed == complaintID {
		return 0
	}
	seq, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0
	}
	return seq
}
