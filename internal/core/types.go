package core

import (
	"strings"

	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/jackc/pgx/v5/pgtype"
)

// Capability is an optional catalog attribute an industry exposes.
type Capability uint8

const (
	CapCategory Capability = 1 << iota
	CapAllergyInfo
	CapImage
)

// Has reports whether c includes every bit of other.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// IndustryDefinition describes one industry tag: how it is labelled, where
// its catalog step lives, and which optional catalog fields it collects.
type IndustryDefinition struct {
	Tag          string     // Stored value: "restaurant"
	Label        string     // Display name: "Restaurant"
	CatalogNoun  string     // What its catalog rows are called: "menu items"
	FormPath     string     // Catalog step: "/form/restaurant" (derived from Tag if empty)
	Capabilities Capability // Optional catalog fields accepted for this industry
	Order        int        // Position in the industry select
}

// Parking values accepted by the shop form.
const (
	ParkingAvailable   = "available"
	ParkingUnavailable = "unavailable"
	ParkingNearby      = "nearby"
)

// ParkingOptions lists the parking values in display order.
var ParkingOptions = []string{ParkingAvailable, ParkingUnavailable, ParkingNearby}

// ParkingLabel returns the display text for a parking value.
func ParkingLabel(v string) string {
	switch v {
	case ParkingAvailable:
		return "Available"
	case ParkingUnavailable:
		return "Not available"
	case ParkingNearby:
		return "Nearby"
	default:
		return v
	}
}

// CatalogDraft is one validated row from the catalog form, ready to insert.
type CatalogDraft struct {
	Name        string
	Price       int32
	Description pgtype.Text
	ImageURL    pgtype.Text
	Category    pgtype.Text
	AllergyInfo pgtype.Text
}

// Params builds insert parameters for the draft under storeID and industry.
func (d CatalogDraft) Params(storeID int64, industry string) db.CreateCatalogItemParams {
	return db.CreateCatalogItemParams{
		StoreID:     storeID,
		Industry:    industry,
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		ImageUrl:    d.ImageURL,
		Category:    d.Category,
		AllergyInfo: d.AllergyInfo,
	}
}

// CatalogItemUpdate is a partial update of a catalog item. Nil fields keep
// their current value; an empty string clears an optional field to NULL.
type CatalogItemUpdate struct {
	Name        *string `json:"name,omitempty"`
	Price       *int32  `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
	AllergyInfo *string `json:"allergyInfo,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// Apply merges u onto item and validates the result.
func (u CatalogItemUpdate) Apply(item db.CatalogItem) (db.UpdateCatalogItemParams, error) {
	params := db.UpdateCatalogItemParams{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		ImageUrl:    item.ImageUrl,
		Category:    item.Category,
		AllergyInfo: item.AllergyInfo,
		IsAvailable: item.IsAvailable,
	}

	var errs ValidationErrors
	if u.Name != nil {
		name := CleanValue(*u.Name)
		if name == "" {
			errs = append(errs, ValidationError{Field: "name", Message: "required field is empty"})
		}
		params.Name = name
	}
	if u.Price != nil {
		if *u.Price < 0 {
			errs = append(errs, ValidationError{Field: "price", Message: "invalid price: must not be negative"})
		}
		params.Price = *u.Price
	}
	if u.Description != nil {
		params.Description = ToPgText(*u.Description)
	}
	if u.ImageURL != nil {
		v := CleanValue(*u.ImageURL)
		if v != "" {
			if err := validateURL(v); err != nil {
				errs = append(errs, ValidationError{Field: "imageUrl", Value: v, Message: err.Error()})
			}
		}
		params.ImageUrl = ToPgText(v)
	}
	if u.Category != nil {
		params.Category = ToPgText(*u.Category)
	}
	if u.AllergyInfo != nil {
		params.AllergyInfo = ToPgText(*u.AllergyInfo)
	}
	if u.IsAvailable != nil {
		params.IsAvailable = *u.IsAvailable
	}

	if len(errs) > 0 {
		return params, errs
	}
	return params, nil
}

// CatalogFilter narrows ListCatalog. Zero values match everything.
type CatalogFilter struct {
	Industry string
	StoreID  int64
}

// Params converts the filter to query parameters.
func (f CatalogFilter) Params() db.ListAvailableCatalogItemsParams {
	return db.ListAvailableCatalogItemsParams{
		Industry: ToPgText(strings.ToLower(f.Industry)),
		StoreID:  ToPgInt8(f.StoreID),
	}
}

// CatalogBatch is the outcome of one catalog submission.
type CatalogBatch struct {
	BatchID string
	StoreID int64
	Items   []db.CatalogItem
	Dropped int // Draft rows discarded for missing name or price
}

// ListedItem is a catalog item with the name of the shop that owns it.
type ListedItem struct {
	Item     db.CatalogItem
	ShopName string
}

// CatalogGroup is one industry's section of the listing page.
type CatalogGroup struct {
	Industry IndustryDefinition
	Items    []ListedItem
}

// Listing is everything the data page shows.
type Listing struct {
	Stores    []db.Store
	Groups    []CatalogGroup
	ItemCount int
	Errors    []error // Read failures; the affected sections are empty
}
