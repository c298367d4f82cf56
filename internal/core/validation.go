package core

// validation.go provides field-level checks shared by the shop form, the
// catalog form and the catalog update API.
//
// Validation collects every problem instead of stopping at the first, so a
// re-rendered form can mark all invalid fields at once. Messages reuse the
// phrases error_messages.go matches on ("required field", "invalid format",
// "must be one of") so a ValidationErrors value maps to a coded message.

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
)

// ValidationError represents a single validation error for a field.
type ValidationError struct {
	Field   string `json:"field"`           // Form field name
	Value   string `json:"value,omitempty"` // The invalid value
	Message string `json:"message"`         // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors is every problem found in one submission.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return "validation failed"
	case 1:
		return e[0].Error()
	}
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Error()
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for a field, or "" if the field is valid.
func (e ValidationErrors) Field(name string) string {
	for _, ve := range e {
		if ve.Field == name {
			return ve.Message
		}
	}
	return ""
}

// Has reports whether the field has an error.
func (e ValidationErrors) Has(name string) bool {
	return e.Field(name) != ""
}

// IsValidationError reports whether err was caused by the submitted input
// rather than by the server.
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	var verr ValidationError
	return errors.As(err, &verrs) || errors.As(err, &verr) || errors.Is(err, ErrNoCatalogItems)
}

// MinEstablishedYear is the earliest year accepted for a shop's founding.
const MinEstablishedYear = 1900

func validateYear(year int32, now time.Time) error {
	if year < MinEstablishedYear || int(year) > now.Year() {
		return fmt.Errorf("invalid year %d: must be between %d and %d", year, MinEstablishedYear, now.Year())
	}
	return nil
}

// validateTime accepts a 24-hour HH:MM value as sent by <input type="time">.
func validateTime(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid format: use HH:MM")
	}
	return nil
}

func validateEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("invalid format: not an email address")
	}
	return nil
}

// validateURL accepts absolute http and https URLs only.
func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid format: must start with http:// or https://")
	}
	return nil
}

func validateOneOf(s string, options []string) error {
	for _, opt := range options {
		if s == opt {
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(options, ", "))
}
