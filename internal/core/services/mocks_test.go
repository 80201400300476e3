package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/adapters/persistence/repositories"
	"grievance-backend/internal/core/domain"
)

// MockUserRepository is a testify mock of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByRegistrationNumber(ctx context.Context, regNo string) (bool, error) {
	args := m.Called(ctx, regNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	args := m.Called(ctx, ids)
	if users := args.Get(0); users != nil {
		return users.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ListByNames(ctx context.Context, names []string) ([]*models.User, error) {
	args := m.Called(ctx, names)
	if users := args.Get(0); users != nil {
		return users.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockComplaintRepository is a testify mock of repositories.ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) GetByComplaintID(ctx context.Context, complaintID string) (*models.Complaint, error) {
	args := m.Called(ctx, complaintID)
	if complaint := args.Get(0); complaint != nil {
		return complaint.(*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) ListByUserName(ctx context.Context, userName string) ([]*models.Complaint, error) {
	args := m.Called(ctx, userName)
	if complaints := args.Get(0); complaints != nil {
		return complaints.([]*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) List(ctx context.Context, filter repositories.ComplaintFilter) ([]*models.Complaint, error) {
	args := m.Called(ctx, filter)
	if complaints := args.Get(0); complaints != nil {
		return complaints.([]*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintRepository) NextComplaintID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockComplaintRepository) SeedCounter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockComplaintRepository) AppendStatus(ctx context.Context, complaintID string, status domain.Status, comment string, at time.Time) (*models.Complaint, error) {
	args := m.Called(ctx, complaintID, status, comment, at)
	if complaint := args.Get(0); complaint != nil {
		return complaint.(*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}
