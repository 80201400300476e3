package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grievance-backend/internal/adapters/persistence/models"
	"grievance-backend/internal/core/domain"
)

func at(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

// TestBuildCategoryDistribution verifies category buckets are counted
// and ordered ascending by category name.
func TestBuildCategoryDistribution(t *testing.T) {
	complaints := []*models.Complaint{
		{ComplaintID: "C00001", Category: domain.CategoryHostel, Status: domain.StatusPending},
		{ComplaintID: "C00002", Category: domain.CategoryAcademics, Status: domain.StatusResolved},
		{ComplaintID: "C00003", Category: domain.CategoryHostel, Status: domain.StatusInProgress},
	}

	buckets := buildCategoryDistribution(complaints)

	assert.Len(t, buckets, 2)
	assert.Equal(t, "Academics", buckets[0].Category)
	assert.EqualValues(t, 1, buckets[0].Count)
	assert.Equal(t, "Hostel", buckets[1].Category)
	assert.EqualValues(t, 2, buckets[1].Count)
	assert.Len(t, buckets[1].Complaints, 2)
	assert.Equal(t, "C00001", buckets[1].Complaints[0].ComplaintID)
}

// TestBuildTrends verifies per-day totals, resolved/reopen counts and
// the average resolution time.
func TestBuildTrends(t *testing.T) {
	created := at("2024-03-10T09:00:00Z")
	resolved := at("2024-03-10T15:00:00Z") // 6 hours later

	complaints := []*models.Complaint{
		{
			ComplaintID: "C00001",
			Category:    domain.CategoryHostel,
			Status:      domain.StatusResolved,
			CreatedAt:   created,
			Timeline: []models.TimelineEntry{
				{Status: domain.StatusPending, Timestamp: created},
				{Status: domain.StatusResolved, Timestamp: resolved},
			},
		},
		{
			ComplaintID: "C00002",
			Category:    domain.CategoryAcademics,
			Status:      domain.StatusReopened,
			CreatedAt:   at("2024-03-10T11:00:00Z"),
		},
		{
			ComplaintID: "C00003",
			Category:    domain.CategoryHostel,
			Status:      domain.StatusPending,
			CreatedAt:   at("2024-03-11T08:00:00Z"),
		},
		{
			// before the cutoff, must not appear
			ComplaintID: "C00000",
			Category:    domain.CategoryOthers,
			Status:      domain.StatusPending,
			CreatedAt:   at("2024-02-01T08:00:00Z"),
		},
	}

	trends := buildTrends(complaints, at("2024-03-09T00:00:00Z"))

	assert.Len(t, trends, 2)

	first := trends[0]
	assert.Equal(t, "2024-03-10", first.Date)
	assert.EqualValues(t, 2, first.Total)
	assert.EqualValues(t, 1, first.Resolved)
	assert.EqualValues(t, 1, first.ReopenCount)
	assert.Equal(t, []CategoryCount{
		{Category: "Academics", Count: 1},
		{Category: "Hostel", Count: 1},
	}, first.CategoryData)
	if assert.NotNil(t, first.AvgResponseTime) {
		assert.InDelta(t, 6.0, *first.AvgResponseTime, 0.001)
	}

	second := trends[1]
	assert.Equal(t, "2024-03-11", second.Date)
	assert.EqualValues(t, 1, second.Total)
	assert.Nil(t, second.AvgResponseTime)
}

// TestBuildMonthlyRollup verifies month buckets are newest-first with
// per-(status, category) groups and a matching total.
func TestBuildMonthlyRollup(t *testing.T) {
	complaints := []*models.Complaint{
		{ComplaintID: "C00001", Category: domain.CategoryHostel, Status: domain.StatusPending, CreatedAt: at("2024-02-05T10:00:00Z")},
		{ComplaintID: "C00002", Category: domain.CategoryHostel, Status: domain.StatusPending, CreatedAt: at("2024-02-20T10:00:00Z")},
		{ComplaintID: "C00003", Category: domain.CategoryAcademics, Status: domain.StatusResolved, CreatedAt: at("2024-02-25T10:00:00Z")},
		{ComplaintID: "C00004", Category: domain.CategoryOthers, Status: domain.StatusPending, CreatedAt: at("2024-03-01T10:00:00Z")},
	}

	buckets := buildMonthlyRollup(complaints)

	assert.Len(t, buckets, 2)
	assert.Equal(t, "2024-03", buckets[0].Month)
	assert.EqualValues(t, 1, buckets[0].TotalCount)

	february := buckets[1]
	assert.Equal(t, "2024-02", february.Month)
	assert.EqualValues(t, 3, february.TotalCount)
	assert.Len(t, february.Statuses, 2)
	for _, group := range february.Statuses {
		assert.EqualValues(t, len(group.Complaints), group.Count)
	}
}

// TestFirstResolvedAt verifies resolution lookup on the timeline.
func TestFirstResolvedAt(t *testing.T) {
	resolved := at("2024-03-10T15:00:00Z")
	complaint := &models.Complaint{
		Timeline: []models.TimelineEntry{
			{Status: domain.StatusPending, Timestamp: at("2024-03-10T09:00:00Z")},
			{Status: domain.StatusResolved, Timestamp: resolved},
			{Status: domain.StatusReopened, Timestamp: at("2024-03-12T09:00:00Z")},
			{Status: domain.StatusResolved, Timestamp: at("2024-03-13T09:00:00Z")},
		},
	}

	got, ok := firstResolvedAt(complaint)
	assert.True(t, ok)
	assert.Equal(t, resolved, got)

	_, ok = firstResolvedAt(&models.Complaint{})
	assert.False(t, ok)
}
