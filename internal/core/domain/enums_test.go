package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grievance-backend/internal/core/domain"
)

// TestStatusIsValid verifies the status enum is closed.
func TestStatusIsValid(t *testing.T) {
	for _, status := range domain.Statuses {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}

	for _, status := range []domain.Status{"", "pending", "Escalated", "Closed"} {
		assert.False(t, status.IsValid(), "expected %q to be invalid", status)
	}
}

// TestCategoryIsValid verifies the category enum is closed.
func TestCategoryIsValid(t *testing.T) {
	for _, category := range domain.Categories {
		assert.True(t, category.IsValid(), "expected %q to be valid", category)
	}

	for _, category := range []domain.Category{"", "hostel", "Cafeteria"} {
		assert.False(t, category.IsValid(), "expected %q to be invalid", category)
	}
}

// TestDefaultUpdateComment verifies the fallback comment wording.
func TestDefaultUpdateComment(t *testing.T) {
	assert.Equal(t, "Status updated to In Progress", domain.DefaultUpdateComment(domain.StatusInProgress))
	assert.Equal(t, "Status updated to Resolved", domain.DefaultUpdateComment(domain.StatusResolved))
}
