package industries

import "github.com/JonMunkholm/storefront/internal/core"

// "other" also receives every industry tag without a form of its own.
func init() {
	core.Register(core.IndustryDefinition{
		Tag:          core.FallbackIndustry,
		Label:        "Other",
		CatalogNoun:  "items",
		Capabilities: core.CapCategory | core.CapImage,
		Order:        90,
	})
}
