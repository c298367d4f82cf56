package industries

import "github.com/JonMunkholm/storefront/internal/core"

func init() {
	core.Register(core.IndustryDefinition{
		Tag:          "retail",
		Label:        "Retail",
		CatalogNoun:  "products",
		Capabilities: core.CapCategory | core.CapImage,
		Order:        20,
	})
}
