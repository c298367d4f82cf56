package core

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

// ----------------------------------------------------------------------------
// ToPgText Tests
// ----------------------------------------------------------------------------

func TestToPgText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		{name: "plain value", input: "Cafe A", wantValid: true, wantValue: "Cafe A"},
		{name: "trims whitespace", input: "  Cafe A \t", wantValid: true, wantValue: "Cafe A"},
		{name: "empty is NULL", input: "", wantValid: false},
		{name: "whitespace only is NULL", input: "   ", wantValid: false},
		{name: "BOM only is NULL", input: "\ufeff", wantValid: false},
		{name: "zero-width space stripped", input: "\u200bramen", wantValid: true, wantValue: "ramen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPgText(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("ToPgText(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.wantValue {
				t.Errorf("ToPgText(%q) = %q, want %q", tt.input, got.String, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParseOptionalInt4 Tests
// ----------------------------------------------------------------------------

func TestParseOptionalInt4(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue int32
		wantErr   bool
	}{
		{name: "year", input: "1999", wantValid: true, wantValue: 1999},
		{name: "empty is NULL", input: "", wantValid: false},
		{name: "whitespace is NULL", input: "  ", wantValid: false},
		{name: "full-width digits", input: "２００１", wantValid: true, wantValue: 2001},
		{name: "surrounding spaces", input: " 2010 ", wantValid: true, wantValue: 2010},
		{name: "leading zero is decimal", input: "0100", wantValid: true, wantValue: 100},
		{name: "text", input: "nineteen", wantErr: true},
		{name: "decimal", input: "1999.5", wantErr: true},
		{name: "overflow", input: "99999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptionalInt4(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOptionalInt4(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Valid != tt.wantValid {
				t.Fatalf("ParseOptionalInt4(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Valid && got.Int32 != tt.wantValue {
				t.Errorf("ParseOptionalInt4(%q) = %d, want %d", tt.input, got.Int32, tt.wantValue)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// ParsePrice Tests
// ----------------------------------------------------------------------------

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int32
		wantErr bool
	}{
		{name: "plain", input: "1200", want: 1200},
		{name: "zero", input: "0", want: 0},
		{name: "thousands separator", input: "1,200", want: 1200},
		{name: "yen sign", input: "¥1,200", want: 1200},
		{name: "full-width yen sign", input: "￥980", want: 980},
		{name: "en suffix", input: "1200円", want: 1200},
		{name: "full-width digits", input: "１２００", want: 1200},
		{name: "full-width comma", input: "１，２００円", want: 1200},
		{name: "spaces", input: " 500 ", want: 500},
		{name: "empty", input: "", wantErr: true},
		{name: "only currency", input: "円", wantErr: true},
		{name: "negative", input: "-100", wantErr: true},
		{name: "decimal", input: "12.50", wantErr: true},
		{name: "text", input: "free", wantErr: true},
		{name: "database word", input: "timeout", wantErr: true},
		{name: "negative database word", input: "-deadlock", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrice(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if MapError(err).Code != "VAL003" {
					t.Errorf("ParsePrice(%q) error %q should map to VAL003", tt.input, err)
				}
				if tt.input != "" && strings.Contains(err.Error(), tt.input) {
					t.Errorf("ParsePrice(%q) error %q repeats the input", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Small converters
// ----------------------------------------------------------------------------

func TestToPgInt8(t *testing.T) {
	if ToPgInt8(0).Valid {
		t.Error("ToPgInt8(0) should be NULL")
	}
	if ToPgInt8(-1).Valid {
		t.Error("ToPgInt8(-1) should be NULL")
	}
	if got := ToPgInt8(42); !got.Valid || got.Int64 != 42 {
		t.Errorf("ToPgInt8(42) = %+v", got)
	}
}

func TestToPgUUID(t *testing.T) {
	if ToPgUUID(uuid.Nil).Valid {
		t.Error("ToPgUUID(uuid.Nil) should be NULL")
	}
	id := uuid.New()
	got := ToPgUUID(id)
	if !got.Valid || uuid.UUID(got.Bytes) != id {
		t.Errorf("ToPgUUID(%s) = %+v", id, got)
	}
}

func TestTextOrEmpty(t *testing.T) {
	if got := TextOrEmpty(ToPgText("")); got != "" {
		t.Errorf("TextOrEmpty(NULL) = %q, want empty", got)
	}
	if got := TextOrEmpty(ToPgText(" x ")); got != "x" {
		t.Errorf("TextOrEmpty = %q, want %q", got, "x")
	}
}
