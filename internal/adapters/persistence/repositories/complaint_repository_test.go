package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatComplaintID verifies the C-prefixed zero-padded format.
func TestFormatComplaintID(t *testing.T) {
	assert.Equal(t, "C00001", FormatComplaintID(1))
	assert.Equal(t, "C00042", FormatComplaintID(42))
	assert.Equal(t, "C99999", FormatComplaintID(99999))
}

// TestParseComplaintSequence verifies round-tripping and the zero
// fallback for malformed values.
func TestParseComplaintSequence(t *testing.T) {
	for _, seq := range []int64{1, 7, 100, 99999} {
		assert.Equal(t, seq, ParseComplaintSequence(FormatComplaintID(seq)))
	}

	assert.EqualValues(t, 0, ParseComplaintSequence(""))
	assert.EqualValues(t, 0, ParseComplaintSequence("00001"))
	assert.EqualValues(t, 0, ParseComplaintSequence("Cabcde"))
}

// TestSequenceIsDense verifies N allocations from a counter produce
// exactly C00001..C0000N.
func TestSequenceIsDense(t *testing.T) {
	var counter int64
	seen := make(map[string]bool)

	for i := 1; i <= 10; i++ {
		counter++
		id := FormatComplaintID(counter)

		assert.Equal(t, fmt.Sprintf("C%05d", i), id)
		assert.False(t, seen[id], "id %s allocated twice", id)
		seen[id] = true
	}
}
