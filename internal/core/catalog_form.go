package core

// catalog_form.go decodes the menuData field posted by the catalog step.
//
// The browser keeps the draft rows in a JSON array and posts it whole:
//
//	[{"id":"tmp-1","name":"Pizza","price":"1200","category":"Main"}, ...]
//
// The id is a client-side key for add/remove and is discarded. Rows with a
// blank name or blank price are dropped silently; a kept row whose price
// does not parse rejects the whole submission, so nothing is half-saved.

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// FieldMenuData is the single form field carrying the catalog drafts.
const FieldMenuData = "menuData"

// ErrNoCatalogItems is returned when no draft row has both a name and a price.
var ErrNoCatalogItems = errors.New("no catalog items: every row is missing a name or a price")

// draftPrice accepts a JSON string, number or null.
type draftPrice string

func (p *draftPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = draftPrice(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price must be a string or a number")
	}
	*p = draftPrice(n.String())
	return nil
}

// CatalogDraftRow is one row as the browser sends it.
type CatalogDraftRow struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       draftPrice `json:"price"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Category    string     `json:"category"`
	AllergyInfo string     `json:"allergyInfo"`
}

// DecodeCatalogDrafts parses the raw menuData value without filtering.
func DecodeCatalogDrafts(raw string) ([]CatalogDraftRow, error) {
	raw = CleanValue(raw)
	if raw == "" {
		return nil, nil
	}
	var rows []CatalogDraftRow
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, ValidationErrors{{Field: FieldMenuData, Message: "invalid catalog data: " + err.Error()}}
	}
	return rows, nil
}

// ParseCatalogDrafts decodes menuData and returns the rows worth saving for
// the given industry, plus how many rows were dropped for a missing name or
// price. Attributes outside the industry's capabilities are cleared.
// maxItems <= 0 means no limit.
func ParseCatalogDrafts(raw string, def IndustryDefinition, maxItems int) ([]CatalogDraft, int, error) {
	rows, err := DecodeCatalogDrafts(raw)
	if err != nil {
		return nil, 0, err
	}
	if maxItems > 0 && len(rows) > maxItems {
		return nil, 0, ValidationErrors{{
			Field:   FieldMenuData,
			Message: fmt.Sprintf("too many catalog items: %d submitted, limit is %d", len(rows), maxItems),
		}}
	}

	var (
		drafts  []CatalogDraft
		errs    ValidationErrors
		dropped int
	)
	for i, row := range rows {
		name := CleanValue(row.Name)
		price := CleanValue(string(row.Price))
		if name == "" || price == "" {
			dropped++
			continue
		}

		field := fmt.Sprintf("item %d", i+1)
		amount, err := ParsePrice(price)
		if err != nil {
			errs = append(errs, ValidationError{Field: field, Value: price, Message: err.Error()})
			continue
		}

		draft := CatalogDraft{
			Name:        name,
			Price:       amount,
			Description: ToPgText(row.Description),
		}
		if def.Capabilities.Has(CapCategory) {
			draft.Category = ToPgText(row.Category)
		}
		if def.Capabilities.Has(CapAllergyInfo) {
			draft.AllergyInfo = ToPgText(row.AllergyInfo)
		}
		if def.Capabilities.Has(CapImage) {
			draft.ImageURL = ToPgText(row.ImageURL)
			if draft.ImageURL.Valid {
				if err := validateURL(draft.ImageURL.String); err != nil {
					errs = append(errs, ValidationError{Field: field, Value: draft.ImageURL.String, Message: "image URL " + err.Error()})
					continue
				}
			}
		}
		drafts = append(drafts, draft)
	}

	if len(errs) > 0 {
		return nil, dropped, errs
	}
	if len(drafts) == 0 {
		return nil, dropped, ErrNoCatalogItems
	}
	return drafts, dropped, nil
}
