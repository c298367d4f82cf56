package industries

import "github.com/JonMunkholm/storefront/internal/core"

func init() {
	core.Register(core.IndustryDefinition{
		Tag:          "restaurant",
		Label:        "Restaurant",
		CatalogNoun:  "menu items",
		Capabilities: core.CapCategory | core.CapAllergyInfo | core.CapImage,
		Order:        10,
	})
}
