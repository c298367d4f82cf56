package templates

import (
	"strconv"
	"strings"

	"github.com/JonMunkholm/storefront/internal/core"
)

// CatalogFormData drives the second registration step. MenuData is the
// last submitted draft array, handed back to the browser script so a
// rejected submission does not lose the rows.
type CatalogFormData struct {
	Industry core.IndustryDefinition
	ShopName string
	MenuData string
	MaxItems int
	Errors   core.ValidationErrors
	Alert    *core.UserMessage
}

func (d CatalogFormData) noun() string {
	if d.Industry.CatalogNoun == "" {
		return "items"
	}
	return d.Industry.CatalogNoun
}

func (d CatalogFormData) title() string {
	return d.Industry.Label + " " + d.noun()
}

// maxItemsAttr is the data-max-items value, or "" for no limit.
func (d CatalogFormData) maxItemsAttr() string {
	if d.MaxItems <= 0 {
		return ""
	}
	return strconv.Itoa(d.MaxItems)
}

// capabilityFields names the draft row keys the browser script may show
// for an industry, matching the JSON keys of core.CatalogDraftRow.
func capabilityFields(c core.Capability) string {
	var fields []string
	if c.Has(core.CapCategory) {
		fields = append(fields, "category")
	}
	if c.Has(core.CapAllergyInfo) {
		fields = append(fields, "allergyInfo")
	}
	if c.Has(core.CapImage) {
		fields = append(fields, "imageUrl")
	}
	return strings.Join(fields, " ")
}
