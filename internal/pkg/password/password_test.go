package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grievance-backend/internal/pkg/password"
)

// TestHashAndVerify verifies a hash validates against its source and
// nothing else.
func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secret123")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, password.Verify("secret123", hash))
	assert.False(t, password.Verify("secret124", hash))
	assert.False(t, password.Verify("", hash))
}

// TestHashIsSalted verifies two hashes of the same password differ.
func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("secret123")
	assert.NoError(t, err)

	second, err := password.Hash("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
