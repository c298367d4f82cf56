package templates

import (
	"net/url"

	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/a-h/templ"
)

// ShopFormData is everything the shop step needs to render, including the
// previous submission when it is shown again with errors.
type ShopFormData struct {
	Values     url.Values
	Errors     core.ValidationErrors
	Industries []core.IndustryDefinition
	Alert      *core.UserMessage
}

type shopField struct {
	name     string
	label    string
	kind     string // text, textarea, email, url, tel, time, number, industry, prefecture, parking
	required bool
	hint     string
}

var shopFields = []shopField{
	{name: core.FieldShopName, label: "Shop name", kind: "text", required: true},
	{name: core.FieldIndustry, label: "Industry", kind: "industry", required: true},
	{name: core.FieldDescription, label: "Description", kind: "textarea", required: true},
	{name: core.FieldEstablished, label: "Year established", kind: "number", hint: "e.g. 1998"},
	{name: core.FieldPrefecture, label: "Prefecture", kind: "prefecture", required: true},
	{name: core.FieldCity, label: "City", kind: "text", required: true},
	{name: core.FieldStreetAddress, label: "Street address", kind: "text", required: true},
	{name: core.FieldPhone, label: "Phone", kind: "tel", hint: "e.g. 03-1234-5678"},
	{name: core.FieldEmail, label: "Email", kind: "email"},
	{name: core.FieldOpeningTime, label: "Opening time", kind: "time", required: true},
	{name: core.FieldClosingTime, label: "Closing time", kind: "time", required: true},
	{name: core.FieldRegularHoliday, label: "Regular holiday", kind: "text", hint: "e.g. Wednesdays"},
	{name: core.FieldParking, label: "Parking", kind: "parking"},
	{name: core.FieldWebsiteURL, label: "Website", kind: "url"},
	{name: core.FieldInstagramURL, label: "Instagram", kind: "url"},
	{name: core.FieldXURL, label: "X", kind: "url"},
	{name: core.FieldAnnouncement, label: "Announcement", kind: "textarea"},
}

func (f shopField) isSelect() bool {
	switch f.kind {
	case "industry", "prefecture", "parking":
		return true
	}
	return false
}

type selectOption struct {
	Value string
	Label string
}

// options lists the choices of a select field. The first entry is the
// blank placeholder.
func (f shopField) options(industries []core.IndustryDefinition) []selectOption {
	var opts []selectOption
	switch f.kind {
	case "industry":
		opts = append(opts, selectOption{Label: "Select an industry"})
		for _, def := range industries {
			opts = append(opts, selectOption{Value: def.Tag, Label: def.Label})
		}
	case "prefecture":
		opts = append(opts, selectOption{Label: "Select a prefecture"})
		for _, p := range core.Prefectures {
			opts = append(opts, selectOption{Value: p, Label: p})
		}
	case "parking":
		opts = append(opts, selectOption{Label: "Not specified"})
		for _, p := range core.ParkingOptions {
			opts = append(opts, selectOption{Value: p, Label: core.ParkingLabel(p)})
		}
	}
	return opts
}

func (f shopField) errorID() string {
	return f.name + "-error"
}

// controlAttributes are the attributes shared by every input, textarea and
// select of the shop form.
func (f shopField) controlAttributes(msg string) templ.Attributes {
	attrs := templ.Attributes{
		"id":       f.name,
		"name":     f.name,
		"required": f.required,
	}
	if msg != "" {
		attrs["aria-invalid"] = "true"
		attrs["aria-describedby"] = f.errorID()
	}
	return attrs
}
