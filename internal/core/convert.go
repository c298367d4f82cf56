package core

// convert.go turns raw form strings into PostgreSQL values.
//
// Form input arrives as free text typed by shop owners, often on Japanese
// keyboards:
//   - full-width digits and punctuation ("１，２００")
//   - currency marks before or after the amount ("¥1,200", "1200円")
//   - stray whitespace around every field
//
// All ToPg* functions return pgtype values with Valid=false for blank input,
// so blank optional fields are stored as NULL and never as "".

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/width"
)

// priceReplacer removes currency marks and thousands separators.
var priceReplacer = strings.NewReplacer(
	"\u00a5", "", // Yen sign
	"\uffe5", "", // Full-width yen sign
	"\u5186", "", // 円
	",", "",
)

// CleanValue trims whitespace and invisible characters a browser or a
// copy-paste may leave around a value.
func CleanValue(s string) string {
	s = strings.ReplaceAll(s, "\ufeff", "")
	s = strings.ReplaceAll(s, "\u200b", "")
	return strings.TrimSpace(s)
}

// NarrowDigits folds full-width characters to their ASCII forms.
func NarrowDigits(s string) string {
	return width.Narrow.String(s)
}

// ToPgText converts a string to pgtype.Text.
// Returns invalid if the string is empty or only whitespace.
func ToPgText(s string) pgtype.Text {
	s = CleanValue(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgInt8 converts an id to pgtype.Int8.
// Returns invalid if the value is zero or negative.
func ToPgInt8(i int64) pgtype.Int8 {
	if i <= 0 {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: i, Valid: true}
}

// ToPgUUID converts a uuid to pgtype.UUID.
// Returns invalid for uuid.Nil.
func ToPgUUID(id uuid.UUID) pgtype.UUID {
	if id == uuid.Nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: id, Valid: true}
}

// ParseOptionalInt4 parses an optional integer field.
// Blank input is NULL; anything else must be a base-10 integer.
func ParseOptionalInt4(s string) (pgtype.Int4, error) {
	s = NarrowDigits(CleanValue(s))
	if s == "" {
		return pgtype.Int4{Valid: false}, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return pgtype.Int4{Valid: false}, errors.New("invalid number: not a base-10 integer")
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}, nil
}

// ParsePrice parses a yen amount into a non-negative integer.
// Currency marks and thousands separators are ignored; decimals are rejected.
// Errors never quote the input, which callers keep in ValidationError.Value.
func ParsePrice(s string) (int32, error) {
	cleaned := priceReplacer.Replace(NarrowDigits(CleanValue(s)))
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, errors.New("invalid price: empty")
	}
	n, err := strconv.ParseInt(cleaned, 10, 32)
	if err != nil {
		return 0, errors.New("invalid price: not a whole number")
	}
	if n < 0 {
		return 0, errors.New("invalid price: must not be negative")
	}
	return int32(n), nil
}

// TextOrEmpty returns the string of a valid pgtype.Text, or "".
func TextOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
