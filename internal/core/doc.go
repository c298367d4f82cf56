// Package core provides the business logic for shop registration.
//
// The package holds the domain rules independent of HTTP: form parsing and
// validation, the industry registry, catalog batches and the audit log. The
// web package drives it; tests drive it through the in-memory repository in coretest.
//
// # Architecture
//
//   - Industry Registry: each industry is registered once with its catalog
//     noun and the optional attributes its catalog items carry.
//   - Service: the entry point for registering stores, saving catalogs and
//     reading the listing.
//   - Repository: persistence behind an interface, with a Postgres
//     implementation built on pgxpool.
//   - Audit: every store and catalog mutation is recorded.
//
// # Industry Registry
//
// Industries are registered at init time using [Register]:
//
//	core.Register(core.IndustryDefinition{
//	    Tag:          "restaurant",
//	    Label:        "Restaurant",
//	    CatalogNoun:  "menu items",
//	    Capabilities: core.CapCategory | core.CapAllergyInfo | core.CapImage,
//	    Order:        10,
//	})
//
// Import the industries package for its side effects to load the built-in set.
//
// # Registration Flow
//
//  1. [Service.RegisterStore] validates the shop form and creates the store.
//  2. [NextStepPath] picks the catalog form for the store's industry.
//  3. [Service.SaveCatalog] decodes the menuData rows, drops incomplete rows
//     and inserts the rest in one transaction.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a code for support reference:
//
//   - DB001-DB007: Database errors (duplicates, constraints, connections)
//   - SAVE001-SAVE004: Persistence failures while saving a registration
//   - VAL000-VAL008: Field validation errors, matched by message only
//   - FORM001-FORM004: Form flow errors (session, size, industry, busy)
//   - REQ001, RATE001, NF001: Request errors
package core
