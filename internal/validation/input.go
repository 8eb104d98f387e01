package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

const (
	MaxUsernameLength     = 150
	MaxNameLength         = 150
	MaxBioLength          = 5000
	MaxTitleLength        = 200
	MaxHourlyRate         = 99999999.99
	MaxPortfolioURLLength = 500
)

var (
	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateLength проверяет длину строки в символах. Нулевая граница не проверяется.
func ValidateLength(field, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return apperror.Validation(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	if max > 0 && length > max {
		return apperror.Validation(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validation(field + " is required")
	}
	return nil
}

// ValidateUsername: буквы, цифры и @.+-_, как в учётных записях Django.
func ValidateUsername(username string) error {
	if err := ValidateNonEmpty("username", username); err != nil {
		return err
	}
	if err := ValidateLength("username", username, 0, MaxUsernameLength); err != nil {
		return err
	}
	if !usernameRegex.MatchString(username) {
		return apperror.Validation("username may contain only letters, digits and @/./+/-/_")
	}
	return nil
}

// ValidateEmail допускает пустой email.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return apperror.Validation("enter a valid email address")
	}
	return nil
}

func ValidateHourlyRate(rate float64) error {
	if rate < 0 || rate > MaxHourlyRate {
		return apperror.Validation("hourly_rate is out of range")
	}
	return nil
}

func ValidatePrice(field string, price float64) error {
	if price < 0 || price > MaxHourlyRate {
		return apperror.Validation(field + " is out of range")
	}
	return nil
}

// ValidatePortfolioURL допускает пустое значение, иначе только http(s).
func ValidatePortfolioURL(link string) error {
	if link == "" {
		return nil
	}
	if err := ValidateLength("portfolio_url", link, 0, MaxPortfolioURLLength); err != nil {
		return err
	}
	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return apperror.Validation("portfolio_url must be an http(s) URL")
	}
	return nil
}
