package industries

import "github.com/JonMunkholm/storefront/internal/core"

// Appointment-based industries price a menu of services rather than goods.
func init() {
	core.Register(core.IndustryDefinition{
		Tag:          "service",
		Label:        "Service",
		CatalogNoun:  "services",
		Capabilities: core.CapCategory,
		Order:        30,
	})

	core.Register(core.IndustryDefinition{
		Tag:          "beauty",
		Label:        "Beauty & Salon",
		CatalogNoun:  "treatments",
		Capabilities: core.CapCategory | core.CapImage,
		Order:        40,
	})

	core.Register(core.IndustryDefinition{
		Tag:          "healthcare",
		Label:        "Healthcare & Welfare",
		CatalogNoun:  "services",
		Capabilities: core.CapCategory,
		Order:        50,
	})
}
