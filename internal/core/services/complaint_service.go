package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/adapters/persistence/repositories"
	"grievance-backend/internal/core/domain"
)

// ComplaintService handles the complaint lifecycle
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
	userRepo      repositories.UserRepository
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repositories.ComplaintRepository, userRepo repositories.UserRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
	}
}

// SubmitInput represents complaint submission input
type SubmitInput struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserName    string `json:"userName"`
	Image       string `json:"image"`
}

// Submit lodges a new complaint and returns its public identifier
func (s *ComplaintService) Submit(ctx context.Context, input *SubmitInput) (string, error) {
	// 1. All fields except image are required
	if input.Category == "" || input.Title == "" || input.Description == "" || input.UserName == "" {
		return "", domain.ErrValidation
	}

	category := domain.Category(input.Category)
	if !category.IsValid() {
		return "", domain.ErrInvalidCategory
	}

	// 2. Allocate the next sequential identifier
	complaintID, err := s.complaintRepo.NextComplaintID(ctx)
	if err != nil {
		return "", err
	}

	// 3. Resolve the submitter so the complaint carries a real user
	// reference; the display name stays on the record either way.
	var userID *string
	user, err := s.userRepo.GetByName(ctx, input.UserName)
	switch {
	case err == nil:
		userID = &user.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// loose name link, submission proceeds without a reference
	default:
		return "", err
	}

	now := time.Now()
	complaint := &models.Complaint{
		ComplaintID: complaintID,
		Category:    category,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
		UserName:    input.UserName,
		UserID:      userID,
		Image:       input.Image,
		Timeline: []models.TimelineEntry{
			{
				Status:    domain.StatusPending,
				Comment:   domain.CommentSubmitted,
				Timestamp: now,
			},
		},
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return "", err
	}

	log.Printf("✅ Complaint lodged: %s (%s)", complaintID, category)
	return complaintID, nil
}

// ListByUser returns a user's complaints, newest first
func (s *ComplaintService) ListByUser(ctx context.Context, userName string) ([]*models.ComplaintSummary, error) {
	complaints, err := s.complaintRepo.ListByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.ComplaintSummary, len(complaints))
	for i, c := range complaints {
		summaries[i] = c.ToSummary()
	}
	return summaries, nil
}

// Track returns a single complaint with its full timeline
func (s *ComplaintService) Track(ctx context.Context, complaintID string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByComplaintID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return complaint, nil
}

// GetImage returns the stored image payload for a complaint
func (s *ComplaintService) GetImage(ctx context.Context, complaintID string) (string, error) {
	complaint, err := s.complaintRepo.GetByComplaintID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrImageNotFound
		}
		return "", err
	}
	if !complaint.HasImage() {
		return "", domain.ErrImageNotFound
	}
	return complaint.Image, nil
}

// ListAll returns complaints matching the filter, each joined with the
// submitting user's registration number ("N/A" when no user matched).
func (s *ComplaintService) ListAll(ctx context.Context, filter repositories.ComplaintFilter) ([]*models.AdminComplaint, error) {
	complaints, err := s.complaintRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	byID, byName, err := s.lookupRegistrations(ctx, complaints)
	if err != nil {
		return nil, err
	}

	result := make([]*models.AdminComplaint, len(complaints))
	for i, c := range complaints {
		regNo := "N/A"
		if c.UserID != nil {
			if no, ok := byID[*c.UserID]; ok {
				regNo = no
			}
		} else if no, ok := byName[c.UserName]; ok {
			regNo = no
		}
		result[i] = &models.AdminComplaint{
			ComplaintSummary:   *c.ToSummary(),
			RegistrationNumber: regNo,
		}
	}
	return result, nil
}

// lookupRegistrations batches the user lookups for a listing: by user
// reference where one was recorded, by display name for older rows.
func (s *ComplaintService) lookupRegistrations(ctx context.Context, complaints []*models.Complaint) (map[string]string, map[string]string, error) {
	var ids, names []string
	seenID := make(map[string]bool)
	seenName := make(map[string]bool)
	for _, c := range complaints {
		if c.UserID != nil {
			if !seenID[*c.UserID] {
				seenID[*c.UserID] = true
				ids = append(ids, *c.UserID)
			}
		} else if !seenName[c.UserName] {
			seenName[c.UserName] = true
			names = append(names, c.UserName)
		}
	}

	byID := make(map[string]string)
	byName := make(map[string]string)

	users, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for _, u := range users {
		byID[u.ID] = u.RegistrationNumber
	}

	users, err = s.userRepo.ListByNames(ctx, names)
	if err != nil {
		return nil, nil, err
	}
	for _, u := range users {
		byName[u.Name] = u.RegistrationNumber
	}
	return byID, byName, nil
}

// UpdateStatus moves a complaint to a new status and appends the
// matching timeline entry. The status must be one of the recognized
// values; nothing is written otherwise.
func (s *ComplaintService) UpdateStatus(ctx context.Context, complaintID, status, comment string) (*models.Complaint, error) {
	newStatus := domain.Status(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	if comment == "" {
		comment = domain.DefaultUpdateComment(newStatus)
	}

	complaint, err := s.complaintRepo.AppendStatus(ctx, complaintID, newStatus, comment, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}

	log.Printf("✅ Complaint %s updated to %s", complaintID, newStatus)
	return complaint, nil
}

// Reopen puts a complaint back into the Reopened state
func (s *ComplaintService) Reopen(ctx context.Context, complaintID string) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.AppendStatus(ctx, complaintID, domain.StatusReopened, domain.CommentReopened, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}

	log.Printf("✅ Complaint %s reopened", complaintID)
	return complaint, nil
}
