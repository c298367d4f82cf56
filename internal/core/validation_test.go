package core

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "shopName", Message: "required field is empty"},
		{Field: "email", Value: "x", Message: "invalid format: not an email address"},
	}

	if got := errs.Error(); got != "shopName: required field is empty; email: invalid format: not an email address" {
		t.Errorf("Error() = %q", got)
	}
	if !errs.Has("email") || errs.Has("city") {
		t.Error("Has() reported the wrong fields")
	}
	if errs.Field("shopName") != "required field is empty" {
		t.Errorf("Field(shopName) = %q", errs.Field("shopName"))
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"list", ValidationErrors{{Field: "a", Message: "b"}}, true},
		{"single", ValidationError{Field: "a", Message: "b"}, true},
		{"wrapped list", fmt.Errorf("form: %w", ValidationErrors{{Message: "b"}}), true},
		{"no rows", ErrNoCatalogItems, true},
		{"database", errors.New("connection refused"), false},
		{"not found", ErrNotFound, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFieldValidators(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"year lower bound", validateYear(1900, now), false},
		{"year current", validateYear(2024, now), false},
		{"year too old", validateYear(1899, now), true},
		{"year next", validateYear(2025, now), true},
		{"time", validateTime("09:30"), false},
		{"time midnight", validateTime("00:00"), false},
		{"time hour", validateTime("24:00"), true},
		{"time text", validateTime("nine"), true},
		{"email", validateEmail("shop@example.com"), false},
		{"email display name", validateEmail("Shop <shop@example.com>"), true},
		{"email missing at", validateEmail("shop.example.com"), true},
		{"url https", validateURL("https://example.com/shop"), false},
		{"url http", validateURL("http://example.com"), false},
		{"url no scheme", validateURL("example.com"), true},
		{"url javascript", validateURL("javascript:alert(1)"), true},
		{"one of", validateOneOf("nearby", ParkingOptions), false},
		{"not one of", validateOneOf("valet", ParkingOptions), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", tt.err, tt.wantErr)
			}
		})
	}
}

func TestCatalogItemUpdateApply(t *testing.T) {
	item := testCatalogItem()

	name := "  Margherita "
	avail := false
	params, err := CatalogItemUpdate{Name: &name, IsAvailable: &avail}.Apply(item)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if params.Name != "Margherita" || params.IsAvailable || params.Price != item.Price {
		t.Errorf("params = %+v", params)
	}
	if params.Category != item.Category {
		t.Error("untouched fields should keep their value")
	}

	blank := " "
	badURL := "pizza.png"
	_, err = CatalogItemUpdate{Name: &blank, ImageURL: &badURL}.Apply(item)
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Errorf("Apply() error = %v, want two validation errors", err)
	}
}
