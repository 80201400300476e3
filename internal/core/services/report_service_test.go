package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) *time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

// TestFillMissingDates_EmptyRange verifies a range with no matching
// complaints still yields one zero entry per calendar day.
func TestFillMissingDates_EmptyRange(t *testing.T) {
	filled := FillMissingDates(nil, day("2024-01-01"), day("2024-01-03"))

	assert.Equal(t, []DayCount{
		{Date: "2024-01-01", Count: 0},
		{Date: "2024-01-02", Count: 0},
		{Date: "2024-01-03", Count: 0},
	}, filled)
}

// TestFillMissingDates_GapFill verifies interior gaps are zero-filled
// while counted days keep their counts.
func TestFillMissingDates_GapFill(t *testing.T) {
	days := []DayCount{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-04", Count: 1},
	}

	filled := FillMissingDates(days, day("2024-01-01"), day("2024-01-05"))

	assert.Equal(t, []DayCount{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-01-02", Count: 0},
		{Date: "2024-01-03", Count: 0},
		{Date: "2024-01-04", Count: 1},
		{Date: "2024-01-05", Count: 0},
	}, filled)
}

// TestFillMissingDates_SingleDay verifies a one-day range produces
// exactly one entry.
func TestFillMissingDates_SingleDay(t *testing.T) {
	filled := FillMissingDates(nil, day("2024-06-15"), day("2024-06-15"))

	assert.Equal(t, []DayCount{{Date: "2024-06-15", Count: 0}}, filled)
}

// TestFillMissingDates_NoRange verifies the raw grouped series passes
// through untouched when either bound is missing.
func TestFillMissingDates_NoRange(t *testing.T) {
	days := []DayCount{{Date: "2024-01-04", Count: 1}}

	assert.Equal(t, days, FillMissingDates(days, nil, nil))
	assert.Equal(t, days, FillMissingDates(days, day("2024-01-01"), nil))
	assert.Equal(t, days, FillMissingDates(days, nil, day("2024-01-05")))
}
