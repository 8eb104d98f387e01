package validation

import (
	"unicode"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

const MinPasswordLength = 8

// ValidatePassword требует не меньше 8 символов и хотя бы один не цифровой.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperror.Validation("password must be at least 8 characters")
	}

	for _, r := range password {
		if !unicode.IsDigit(r) {
			return nil
		}
	}
	return apperror.Validation("password can't be entirely numeric")
}
