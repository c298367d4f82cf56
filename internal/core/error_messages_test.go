package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "duplicate key maps correctly",
			err:         errors.New("ERROR: duplicate key value violates unique constraint"),
			wantCode:    "DB001",
			wantMessage: "This record already exists",
		},
		{
			name:        "foreign key maps correctly",
			err:         errors.New(`insert or update on table "catalog_items" violates foreign key constraint`),
			wantCode:    "DB002",
			wantMessage: "The shop for these items no longer exists",
		},
		{
			name:        "check constraint maps correctly",
			err:         errors.New(`new row for relation "catalog_items" violates check constraint "catalog_items_price_check"`),
			wantCode:    "DB003",
			wantMessage: "A value is outside the allowed range",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			wantCode:    "DB004",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "database error inside save wrapper keeps the database code",
			err:         fmt.Errorf("save catalog: %w", errors.New("connection refused")),
			wantCode:    "DB004",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "save wrapper without database pattern",
			err:         fmt.Errorf("save store: %w", errors.New("conn busy")),
			wantCode:    "SAVE001",
			wantMessage: "Failed to save shop information",
		},
		{
			name:        "empty catalog maps correctly",
			err:         ErrNoCatalogItems,
			wantCode:    "VAL004",
			wantMessage: "No items with both a name and a price were submitted",
		},
		{
			name:        "invalid price maps correctly",
			err:         errors.New("item 2: invalid price: not a whole number"),
			wantCode:    "VAL003",
			wantMessage: "A price is not valid",
		},
		{
			name:        "not found sentinel",
			err:         fmt.Errorf("get store 9: %w", ErrNotFound),
			wantCode:    "NF001",
			wantMessage: "The requested record was not found",
		},
		{
			name:        "no session sentinel",
			err:         ErrNoSession,
			wantCode:    "FORM001",
			wantMessage: "Your registration session has expired",
		},
		{
			name:        "body too large",
			err:         errors.New("http: request body too large"),
			wantCode:    "FORM002",
			wantMessage: "The submitted form is too large",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("DUPLICATE KEY value violates"),
			wantCode:    "DB001",
			wantMessage: "This record already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() Code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() Message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestValidationErrorsMapToCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationErrors
		wantCode string
	}{
		{
			name:     "required field",
			err:      ValidationErrors{{Field: "shopName", Message: "required field is empty"}},
			wantCode: "VAL001",
		},
		{
			name:     "year",
			err:      ValidationErrors{{Field: "established", Message: "invalid year: enter a four-digit year"}},
			wantCode: "VAL002",
		},
		{
			name:     "mixed problems",
			err:      ValidationErrors{{Field: "parking", Message: "must be one of: a, b"}, {Field: "email", Message: "invalid format: not an email address"}},
			wantCode: "VAL006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapError(tt.err).Code; got != tt.wantCode {
				t.Errorf("MapError(%q) Code = %q, want %q", tt.err.Error(), got, tt.wantCode)
			}
		})
	}
}

func TestValidationInputCannotSelectDatabaseCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "price typed as timeout",
			err:      ValidationErrors{{Field: "item 1", Value: "timeout", Message: "invalid price: not a whole number"}},
			wantCode: "VAL003",
		},
		{
			name:     "value deadlock with format problem",
			err:      ValidationErrors{{Field: "email", Value: "deadlock", Message: "invalid format: not an email address"}},
			wantCode: "VAL007",
		},
		{
			name:     "field name is not matched",
			err:      ValidationErrors{{Field: "connection refused", Message: "required field is empty"}},
			wantCode: "VAL001",
		},
		{
			name:     "single validation error",
			err:      ValidationError{Field: "item 3", Value: "duplicate key", Message: "invalid price: must not be negative"},
			wantCode: "VAL003",
		},
		{
			name:     "wrapped validation errors",
			err:      fmt.Errorf("save catalog: %w", ValidationErrors{{Field: "item 1", Value: "timeout", Message: "invalid price: empty"}}),
			wantCode: "VAL003",
		},
		{
			name:     "unmatched message",
			err:      ValidationErrors{{Field: "x", Value: "deadlock", Message: "deadlock"}},
			wantCode: "VAL000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapError(tt.err).Code; got != tt.wantCode {
				t.Errorf("MapError(%q) Code = %q, want %q", tt.err.Error(), got, tt.wantCode)
			}
		})
	}
}

func TestParsedInputMapsToValidationCodes(t *testing.T) {
	_, _, err := ParseCatalogDrafts(`[{"name":"Pizza","price":"timeout"}]`, IndustryDefinition{Tag: "restaurant"}, 0)
	if got := MapError(err); got.Code != "VAL003" {
		t.Errorf("catalog price %q mapped to %s (%s), want VAL003", "timeout", got.Code, got.Message)
	}
	if strings.Contains(err.Error(), "timeout") {
		t.Errorf("error text %q repeats the submitted price", err)
	}

	_, err = ParseOptionalInt4("deadlock")
	if err == nil || strings.Contains(err.Error(), "deadlock") {
		t.Errorf("ParseOptionalInt4 error = %v, want one that does not repeat the input", err)
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(errors.New("connection refused"))
	if !strings.Contains(got, "Unable to connect to database") || !strings.Contains(got, "(Code: DB004)") {
		t.Errorf("FormatUserError() = %q", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true")
	}
	if IsUserFacing(errors.New("something odd")) {
		t.Error("unmapped error should not be user facing")
	}
	if !IsUserFacing(ErrNoCatalogItems) {
		t.Error("ErrNoCatalogItems should be user facing")
	}
}

func TestUserError(t *testing.T) {
	if NewUserError(nil) != nil {
		t.Fatal("NewUserError(nil) should be nil")
	}

	tech := fmt.Errorf("save catalog: %w", errors.New("deadlock detected"))
	ue := NewUserError(tech)

	if ue.Error() != "Database was busy with conflicting operations" {
		t.Errorf("Error() = %q", ue.Error())
	}
	if ue.User.Code != "DB007" {
		t.Errorf("Code = %q, want DB007", ue.User.Code)
	}
	if !errors.Is(ue, tech) {
		t.Error("UserError should unwrap to the technical error")
	}

	var target *UserError
	if !errors.As(fmt.Errorf("handler: %w", ue), &target) {
		t.Error("errors.As should find a wrapped UserError")
	}
}
