package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grievance-backend/internal/core/domain"
)

// User represents users table
type User struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"id"`
	Name               string    `gorm:"size:100;not null" json:"name"`
	RegistrationNumber string    `gorm:"uniqueIndex;size:50;not null" json:"registrationNumber"`
	Email              string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password           string    `gorm:"size:255;not null" json:"-"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key when none was set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Complaint represents complaints table
type Complaint struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	ComplaintID string          `gorm:"uniqueIndex;size:10;not null" json:"complaintId"`
	Category    domain.Category `gorm:"size:20;not null" json:"category"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Status      domain.Status   `gorm:"size:20;default:'Pending'" json:"status"`
	UserName    string          `gorm:"index;size:100;not null" json:"userName"`
	UserID      *string         `gorm:"size:36;index" json:"-"`
	Image       string          `gorm:"type:longtext" json:"-"`
	Timeline    []TimelineEntry `gorm:"foreignKey:ComplaintRef;references:ID" json:"timeline"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// HasImage reports whether an image payload was stored.
func (c *Complaint) HasImage() bool {
	return c.Image != ""
}

// TimelineEntry represents complaint_timeline table.
// Rows are append-only: one row per status transition.
type TimelineEntry struct {
	ID           uint          `gorm:"primaryKey" json:"-"`
	ComplaintRef uint          `gorm:"index;not null" json:"-"`
	Status       domain.Status `gorm:"size:20;not null" json:"status"`
	Comment      string        `gorm:"size:500" json:"comment"`
	Timestamp    time.Time     `gorm:"not null" json:"timestamp"`
}

func (TimelineEntry) TableName() string {
	return "complaint_timeline"
}

// ComplaintCounter represents complaint_counters table.
// A single row holds the last allocated complaint sequence number;
// it is incremented under a row lock so IDs stay dense and unique.
type ComplaintCounter struct {
	ID    uint  `gorm:"primaryKey"`
	Value int64 `gorm:"not null;default:0"`
}

func (ComplaintCounter) TableName() string {
	return "complaint_counters"
}

// ComplaintSummary DTO used by list endpoints (image payload omitted)
type ComplaintSummary struct {
	ComplaintID string          `json:"complaintId"`
	Category    domain.Category `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      domain.Status   `json:"status"`
	UserName    string          `json:"userName"`
	Timeline    []TimelineEntry `json:"timeline"`
	HasImage    bool            `json:"hasImage"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (c *Complaint) ToSummary() *ComplaintSummary {
	return &ComplaintSummary{
		ComplaintID: c.ComplaintID,
		Category:    c.Category,
		Title:       c.Title,
		Description: c.Description,
		Status:      c.Status,
		UserName:    c.UserName,
		Timeline:    c.Timeline,
		HasImage:    c.HasImage(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// AdminComplaint DTO for the admin listing, joined with the
// submitting user's registration number ("N/A" when unresolved).
type AdminComplaint struct {
	ComplaintSummary
	RegistrationNumber string `json:"registrationNumber"`
}

// AutoMigrate creates/updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Complaint{},
		&TimelineEntry{},
		&ComplaintCounter{},
	)
}
