package repositories

import (
	"context"
	"time"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByRegistrationNumber(ctx context.Context, regNo string) (bool, error)
	ListByIDs(ctx context.Context, ids []string) ([]*models.User, error)
	ListByNames(ctx context.Context, names []string) ([]*models.User, error)
}

// ComplaintFilter narrows and orders complaint listings.
// Empty Status/Category (or the "All" sentinel) means no filter.
type ComplaintFilter struct {
	Status   string
	Category string
	SortBy   string
	Order    string
}

// ComplaintRepository defines complaint repository interface
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error)
	ListByUserName(ctx context.Context, userName string) ([]*models.Complaint, error)
	List(ctx context.Context, filter ComplaintFilter) ([]*models.Complaint, error)

	// NextComplaintID atomically allocates the next sequential
	// complaint identifier (C00001, C00002, ...).
	NextComplaintID(ctx context.Context) (string, error)
	// SeedCounter initializes the ID counter row from existing data.
	SeedCounter(ctx context.Context) error

	// AppendStatus sets the complaint status and appends the matching
	// timeline entry in one transaction, returning the updated row.
	AppendStatus(ctx context.Context, complaintID string, status domain.Status, comment string, at time.Time) (*models.Complaint, error)
}
