// Package validation holds the field validators applied before any entity
// field is assigned. Every validator takes the raw value and the field name
// and returns either the normalized value or a VALIDATION *errors.AppError
// whose message is returned to API clients unchanged.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/konekte/resourcehub/backend/internal/domain/entities"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
)

// Field limits, in characters.
const (
	UserNameMin    = 2
	UserNameMax    = 100
	EmailMax       = 120
	ServiceNameMin = 3
	ServiceNameMax = 150
	DescriptionMin = 10
	DescriptionMax = 1000
	LocationMin    = 5
	LocationMax    = 200
	HoursMax       = 100
	PhoneDigitsMin = 8
	PhoneDigitsMax = 15
	PhoneMax       = 32
	CommentMin     = 5
	CommentMax     = 500
	RatingMin      = 1
	RatingMax      = 5
)

type lengthRule struct {
	min, max       int
	minMsg, maxMsg string
}

// checkLength enforces the minimum on the trimmed value and the maximum on
// the raw value, and returns the trimmed value.
func checkLength(value, field string, rule lengthRule) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || utf8.RuneCountInString(trimmed) < rule.min {
		return "", apperrors.NewValidationError(field, rule.minMsg)
	}
	if utf8.RuneCountInString(value) > rule.max {
		return "", apperrors.NewValidationError(field, rule.maxMsg)
	}
	return trimmed, nil
}

// UserName validates a user's display name.
func UserName(value, field string) (string, error) {
	return checkLength(value, field, lengthRule{
		min:    UserNameMin,
		max:    UserNameMax,
		minMsg: "Name must be at least 2 characters long",
		maxMsg: "Name must be less than 100 characters",
	})
}

// Email validates an email address and returns it lowercased and trimmed.
func Email(value, field string) (string, error) {
	if strings.TrimSpace(value) == "" || !strings.Contains(value, "@") {
		return "", apperrors.NewValidationError(field, "Must provide a valid email address")
	}
	if utf8.RuneCountInString(value) > EmailMax {
		return "", apperrors.NewValidationError(field, "Email must be less than 120 characters")
	}
	return strings.TrimSpace(strings.ToLower(value)), nil
}

// ServiceName validates a service provider's name.
func ServiceName(value, field string) (string, error) {
	return checkLength(value, field, lengthRule{
		min:    ServiceNameMin,
		max:    ServiceNameMax,
		minMsg: "Service name must be at least 3 characters long",
		maxMsg: "Service name must be less than 150 characters",
	})
}

// Category accepts only the exact category names in entities.Categories.
func Category(value, field string) (string, error) {
	for _, category := range entities.Categories {
		if value == category {
			return value, nil
		}
	}
	return "", apperrors.NewValidationError(field,
		"Category must be one of: "+strings.Join(entities.Categories, ", "))
}

// Description validates a service provider's description.
func Description(value, field string) (string, error) {
	return checkLength(value, field, lengthRule{
		min:    DescriptionMin,
		max:    DescriptionMax,
		minMsg: "Description must be at least 10 characters long",
		maxMsg: "Description must be less than 1000 characters",
	})
}

// Location validates a service provider's location.
func Location(value, field string) (string, error) {
	return checkLength(value, field, lengthRule{
		min:    LocationMin,
		max:    LocationMax,
		minMsg: "Location must be at least 5 characters long",
		maxMsg: "Location must be less than 200 characters",
	})
}

// Phone validates an optional phone number. Nil and blank values are valid
// and normalize to nil. Spaces, dashes and parentheses are separators; what
// remains must be 8 to 15 ASCII digits. The trimmed value is stored as-is,
// so it is also capped at PhoneMax characters.
func Phone(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}

	digits := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(trimmed)
	if digits == "" || strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return nil, apperrors.NewValidationError(field, "Phone number must contain only digits, spaces, dashes, or parentheses")
	}
	if len(digits) < PhoneDigitsMin || len(digits) > PhoneDigitsMax {
		return nil, apperrors.NewValidationError(field, "Phone number must be between 8 and 15 digits")
	}
	if len(trimmed) > PhoneMax {
		return nil, apperrors.NewValidationError(field, "Phone number must be less than 32 characters")
	}
	return &trimmed, nil
}

// Hours validates the optional free-form opening hours.
func Hours(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(*value) > HoursMax {
		return nil, apperrors.NewValidationError(field, "Hours must be less than 100 characters")
	}
	return &trimmed, nil
}

// Rating accepts whole numbers in [1,5]. value is the decoded JSON value:
// json.Number, or a Go integer when called from code. Strings, booleans,
// fractional numbers and nil are not integers.
func Rating(value any, field string) (int, error) {
	var rating int64
	switch v := value.(type) {
	case int:
		rating = int64(v)
	case int32:
		rating = int64(v)
	case int64:
		rating = v
	case json.Number:
		parsed, err := strconv.ParseInt(v.String(), 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperrors.NewValidationError(field, "Rating must be between 1 and 5")
		}
		if err != nil {
			return 0, apperrors.NewValidationError(field, "Rating must be an integer")
		}
		rating = parsed
	default:
		return 0, apperrors.NewValidationError(field, "Rating must be an integer")
	}

	if rating < RatingMin || rating > RatingMax {
		return 0, apperrors.NewValidationError(field, "Rating must be between 1 and 5")
	}
	return int(rating), nil
}

// Comment validates a review comment.
func Comment(value, field string) (string, error) {
	return checkLength(value, field, lengthRule{
		min:    CommentMin,
		max:    CommentMax,
		minMsg: "Comment must be at least 5 characters long",
		maxMsg: "Comment must be less than 500 characters",
	})
}

// Required checks that a reference identifier is present.
func Required(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperrors.NewValidationError(field, fmt.Sprintf("%s is required", field))
	}
	return trimmed, nil
}
