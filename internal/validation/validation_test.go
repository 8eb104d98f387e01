package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "alice", false},
		{"with symbols", "bob.smith+art@studio-1", false},
		{"empty", "", true},
		{"spaces", "alice smith", true},
		{"too long", strings.Repeat("a", MaxUsernameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.True(t, apperror.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail(""))
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail("alice"))
	assert.Error(t, ValidateEmail("alice@example"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret-pass"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword("12345678"))
}

func TestValidatePortfolioURL(t *testing.T) {
	assert.NoError(t, ValidatePortfolioURL(""))
	assert.NoError(t, ValidatePortfolioURL("https://behance.net/alice"))
	assert.Error(t, ValidatePortfolioURL("ftp://files.example.com"))
	assert.Error(t, ValidatePortfolioURL("not a url"))
}

func TestValidateHourlyRate(t *testing.T) {
	assert.NoError(t, ValidateHourlyRate(0))
	assert.NoError(t, ValidateHourlyRate(75.5))
	assert.Error(t, ValidateHourlyRate(-1))
}

func TestValidateLength(t *testing.T) {
	assert.NoError(t, ValidateLength("name", "abc", 1, 3))
	assert.Error(t, ValidateLength("name", "", 1, 3))
	assert.Error(t, ValidateLength("name", "абвг", 0, 3))
}
