package core

// error_messages.go maps technical errors to user-friendly messages with a
// code that can be quoted to support.
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Duplicate key         Patterns: "duplicate key"
//	DB002 - Missing parent row    Patterns: "foreign key constraint", "violates foreign key"
//	DB003 - Check constraint      Patterns: "violates check constraint"
//	DB004 - Connection refused    Patterns: "connection refused"
//	DB005 - Connection reset      Patterns: "connection reset"
//	DB006 - Timeout               Patterns: "timeout"
//	DB007 - Deadlock              Patterns: "deadlock"
//
// # Save Errors (SAVE001-SAVE099)
//
// Write operations wrap their failure with the operation name, so when no
// database pattern matches the operation still gets a specific message.
//
//	SAVE001 - Shop not saved          Patterns: "save store"
//	SAVE002 - Catalog not saved       Patterns: "save catalog"
//	SAVE003 - Catalog item not updated Patterns: "update catalog"
//	SAVE004 - Catalog item not deleted Patterns: "delete catalog"
//
// # Validation Errors (VAL000-VAL099)
//
// ValidationErrors are matched by their Message fields against this group
// alone, so text a user typed cannot select a database code.
//
//	VAL000 - Other bad input    ValidationErrors with no matching message
//	VAL001 - Required field     Patterns: "required field"
//	VAL002 - Invalid year       Patterns: "invalid year"
//	VAL003 - Invalid price      Patterns: "invalid price"
//	VAL004 - Empty catalog      Patterns: "no catalog items"
//	VAL005 - Unreadable catalog Patterns: "invalid catalog data"
//	VAL006 - Not an option      Patterns: "must be one of"
//	VAL007 - Invalid format     Patterns: "invalid format"
//	VAL008 - Too many items     Patterns: "too many catalog items"
//
// # Form Errors (FORM001-FORM099)
//
//	FORM001 - Session expired   ErrNoSession
//	FORM002 - Body too large    Patterns: "request body too large"
//	FORM003 - Unknown industry  Patterns: "unknown industry"
//	FORM004 - Busy              Patterns: "submissions in progress"
//
// # Other
//
//	NF001   - Not found         ErrNotFound
//	REQ001  - Request cancelled Patterns: "context canceled"
//	RATE001 - Rate limited      Patterns: "rate limit"
//	ERR000  - Fallback
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so specific patterns sit before general ones. Error text
// built here and in the repository never quotes submitted values.

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// storagePatterns cover failures reported by the database or a write.
var storagePatterns = []errorPattern{
	// Database constraints
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "This record already exists",
			Action:  "Check the list of registered shops",
			Code:    "DB001",
		},
	},
	{
		pattern: "foreign key constraint",
		msg: UserMessage{
			Message: "The shop for these items no longer exists",
			Action:  "Register the shop information again",
			Code:    "DB002",
		},
	},
	{
		pattern: "violates foreign key",
		msg: UserMessage{
			Message: "The shop for these items no longer exists",
			Action:  "Register the shop information again",
			Code:    "DB002",
		},
	},
	{
		pattern: "violates check constraint",
		msg: UserMessage{
			Message: "A value is outside the allowed range",
			Action:  "Check prices are zero or more and options come from the list",
			Code:    "DB003",
		},
	},

	// Database connectivity
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB004",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB006",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB007",
		},
	},

	// Write operations
	{
		pattern: "save store",
		msg: UserMessage{
			Message: "Failed to save shop information",
			Action:  "Please try again",
			Code:    "SAVE001",
		},
	},
	{
		pattern: "save catalog",
		msg: UserMessage{
			Message: "Failed to save catalog items",
			Action:  "Please try again; none of the items were saved",
			Code:    "SAVE002",
		},
	},
	{
		pattern: "update catalog",
		msg: UserMessage{
			Message: "Failed to update the catalog item",
			Action:  "Please try again",
			Code:    "SAVE003",
		},
	},
	{
		pattern: "delete catalog",
		msg: UserMessage{
			Message: "Failed to delete the catalog item",
			Action:  "Please try again",
			Code:    "SAVE004",
		},
	},
}

// inputPatterns cover problems with submitted values. ValidationErrors are
// matched against these only, one Message at a time.
var inputPatterns = []errorPattern{
	{
		pattern: "required field",
		msg: UserMessage{
			Message: "A required field is empty",
			Action:  "Fill in every field marked as required",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid year",
		msg: UserMessage{
			Message: "The year established is not valid",
			Action:  "Enter a four-digit year, or leave it blank",
			Code:    "VAL002",
		},
	},
	{
		pattern: "invalid price",
		msg: UserMessage{
			Message: "A price is not valid",
			Action:  "Enter prices as whole yen amounts of zero or more",
			Code:    "VAL003",
		},
	},
	{
		pattern: "no catalog items",
		msg: UserMessage{
			Message: "No items with both a name and a price were submitted",
			Action:  "Add at least one item with a name and a price",
			Code:    "VAL004",
		},
	},
	{
		pattern: "invalid catalog data",
		msg: UserMessage{
			Message: "The submitted items could not be read",
			Action:  "Reload the page and enter the items again",
			Code:    "VAL005",
		},
	},
	{
		pattern: "must be one of",
		msg: UserMessage{
			Message: "A value is not one of the available options",
			Action:  "Choose a value from the list",
			Code:    "VAL006",
		},
	},
	{
		pattern: "invalid format",
		msg: UserMessage{
			Message: "A value is not in the expected format",
			Action:  "Check times (HH:MM), email addresses and URLs",
			Code:    "VAL007",
		},
	},
	{
		pattern: "too many catalog items",
		msg: UserMessage{
			Message: "Too many items were submitted at once",
			Action:  "Split the items over several submissions",
			Code:    "VAL008",
		},
	},
}

var requestPatterns = []errorPattern{
	// Form handling
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The submitted form is too large",
			Action:  "Shorten long descriptions or submit fewer items",
			Code:    "FORM002",
		},
	},
	{
		pattern: "unknown industry",
		msg: UserMessage{
			Message: "This industry is not supported",
			Action:  "Choose an industry from the list",
			Code:    "FORM003",
		},
	},
	{
		pattern: "submissions in progress",
		msg: UserMessage{
			Message: "The service is busy saving other registrations",
			Action:  "Please submit again in a moment",
			Code:    "FORM004",
		},
	},

	// Request lifecycle
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// errorPatterns is the full table for errors that are not ValidationErrors.
var errorPatterns = concatPatterns(storagePatterns, inputPatterns, requestPatterns)

func concatPatterns(groups ...[]errorPattern) []errorPattern {
	var out []errorPattern
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var (
	invalidInputMessage = UserMessage{
		Message: "Some values are not valid",
		Action:  "Check the highlighted fields",
		Code:    "VAL000",
	}

	notFoundMessage = UserMessage{
		Message: "The requested record was not found",
		Action:  "Check the address and try again",
		Code:    "NF001",
	}

	noSessionMessage = UserMessage{
		Message: "Your registration session has expired",
		Action:  "Enter the shop information again",
		Code:    "FORM001",
	}

	defaultMessage = UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or contact support",
		Code:    "ERR000",
	}
)

// MapError converts a technical error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var (
		verrs ValidationErrors
		verr  ValidationError
	)
	switch {
	case errors.Is(err, ErrNotFound):
		return notFoundMessage
	case errors.Is(err, ErrNoSession):
		return noSessionMessage
	case errors.As(err, &verrs):
		return mapValidation(verrs)
	case errors.As(err, &verr):
		return mapValidation(ValidationErrors{verr})
	}

	if msg, ok := matchPattern(err.Error(), errorPatterns); ok {
		return msg
	}
	return defaultMessage
}

// mapValidation maps by each error's Message so the submitted Value and
// Field never reach the pattern table. The first matching error wins.
func mapValidation(verrs ValidationErrors) UserMessage {
	for _, ve := range verrs {
		if msg, ok := matchPattern(ve.Message, inputPatterns); ok {
			return msg
		}
	}
	return invalidInputMessage
}

func matchPattern(s string, patterns []errorPattern) (UserMessage, bool) {
	s = strings.ToLower(s)
	for _, ep := range patterns {
		if strings.Contains(s, ep.pattern) {
			return ep.msg, true
		}
	}
	return UserMessage{}, false
}

// FormatUserError creates a formatted error string for display:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with the message shown to the user.
// Error() returns the user message; Unwrap() exposes the technical error.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
