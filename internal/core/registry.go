package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]IndustryDefinition)
	registryMu sync.RWMutex
)

// FallbackIndustry is the tag whose form receives every unmatched industry.
const FallbackIndustry = "other"

// FormPath is the first step of the registration flow.
const FormPath = "/form"

// CompletePath is where every successful catalog submission lands.
const CompletePath = "/form/complete"

// Register adds an industry definition to the registry.
// Panics if the tag is already registered.
func Register(def IndustryDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Tag]; exists {
		panic(fmt.Sprintf("industry already registered: %s", def.Tag))
	}

	if def.FormPath == "" {
		def.FormPath = FormPath + "/" + def.Tag
	}

	registry[def.Tag] = def
}

// Get returns an industry definition by tag.
// Returns false if not found.
func Get(tag string) (IndustryDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[tag]
	return def, ok
}

// All returns all registered industries sorted by Order, then tag.
func All() []IndustryDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]IndustryDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Tag < result[j].Tag
	})

	return result
}

// Tags returns the registered industry tags in display order.
func Tags() []string {
	defs := All()
	tags := make([]string, len(defs))
	for i, def := range defs {
		tags[i] = def.Tag
	}
	return tags
}

// IndustryCount returns the number of registered industries.
func IndustryCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered industries.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]IndustryDefinition)
}

// NextStepPath returns the catalog form path for an industry tag.
// The match is exact; any unregistered tag goes to the fallback form.
func NextStepPath(industry string) string {
	if def, ok := Get(industry); ok {
		return def.FormPath
	}
	return FormPath + "/" + FallbackIndustry
}

// IndustryFor returns the definition for tag, or the fallback industry's
// definition when tag is not registered.
func IndustryFor(tag string) IndustryDefinition {
	if def, ok := Get(tag); ok {
		return def
	}
	if def, ok := Get(FallbackIndustry); ok {
		return def
	}
	return IndustryDefinition{
		Tag:          FallbackIndustry,
		Label:        "Other",
		CatalogNoun:  "items",
		FormPath:     FormPath + "/" + FallbackIndustry,
		Capabilities: CapCategory,
	}
}
