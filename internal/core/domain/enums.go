package domain

import "fmt"

// Status represents the lifecycle state of a complaint
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusReopened   Status = "Reopened"
)

// Statuses lists every recognized status, in lifecycle order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusResolved, StatusReopened}

// IsValid reports whether s is one of the recognized statuses.
// Status writes must pass this check before reaching the store.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusReopened:
		return true
	}
	return false
}

// Category classifies a complaint
type Category string

const (
	CategoryInfrastructure Category = "Infrastructure"
	CategoryAcademics      Category = "Academics"
	CategoryAdministration Category = "Administration"
	CategoryHostel         Category = "Hostel"
	CategoryOthers         Category = "Others"
)

// Categories lists every recognized category.
var Categories = []Category{
	CategoryInfrastructure,
	CategoryAcademics,
	CategoryAdministration,
	CategoryHostel,
	CategoryOthers,
}

// IsValid reports whether c is one of the recognized categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryInfrastructure, CategoryAcademics, CategoryAdministration, CategoryHostel, CategoryOthers:
		return true
	}
	return false
}

// FilterAll is the query sentinel meaning "no filter".
const FilterAll = "All"

// Timeline comments written by the lifecycle operations.
const (
	CommentSubmitted = "Complaint submitted"
	CommentReopened  = "Complaint reopened by user"
)

// DefaultUpdateComment builds the timeline comment used when a status
// update carries no comment of its own.
func DefaultUpdateComment(status Status) string {
	return fmt.Sprintf("Status updated to %s", status)
}
