package core

import (
	"context"
	"sort"

	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/JonMunkholm/storefront/internal/logging"
)

// GetStore returns one store or ErrNotFound.
func (s *Service) GetStore(ctx context.Context, id int64) (db.Store, error) {
	return s.repo.GetStore(ctx, id)
}

// ListStores returns every store, newest first. The slice is never nil,
// so callers that ignore the error see an empty list on failure.
func (s *Service) ListStores(ctx context.Context) ([]db.Store, error) {
	stores, err := s.repo.ListStores(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list stores failed", "error", err)
		return []db.Store{}, err
	}
	if stores == nil {
		stores = []db.Store{}
	}
	return stores, nil
}

// GetCatalogItem returns one catalog item or ErrNotFound.
func (s *Service) GetCatalogItem(ctx context.Context, id int64) (db.CatalogItem, error) {
	return s.repo.GetCatalogItem(ctx, id)
}

// ListCatalog returns available catalog items matching filter, newest first.
// The slice is never nil.
func (s *Service) ListCatalog(ctx context.Context, filter CatalogFilter) ([]db.CatalogItem, error) {
	items, err := s.repo.ListActiveCatalogItems(ctx, filter)
	if err != nil {
		logging.FromContext(ctx).Error("list catalog failed",
			"industry", filter.Industry,
			"store_id", filter.StoreID,
			"error", err,
		)
		return []db.CatalogItem{}, err
	}
	if items == nil {
		items = []db.CatalogItem{}
	}
	return items, nil
}

// Listing gathers the data page: all stores plus every available catalog
// item grouped by industry in registry order. A failed read leaves its
// section empty and is reported in Listing.Errors.
func (s *Service) Listing(ctx context.Context) Listing {
	var listing Listing

	stores, err := s.ListStores(ctx)
	if err != nil {
		listing.Errors = append(listing.Errors, err)
	}
	listing.Stores = stores

	items, err := s.ListCatalog(ctx, CatalogFilter{})
	if err != nil {
		listing.Errors = append(listing.Errors, err)
	}
	listing.ItemCount = len(items)

	shopNames := make(map[int64]string, len(stores))
	for _, st := range stores {
		shopNames[st.ID] = st.ShopName
	}

	byIndustry := make(map[string][]ListedItem)
	for _, item := range items {
		byIndustry[item.Industry] = append(byIndustry[item.Industry], ListedItem{
			Item:     item,
			ShopName: shopNames[item.StoreID],
		})
	}

	for _, def := range All() {
		if group, ok := byIndustry[def.Tag]; ok {
			listing.Groups = append(listing.Groups, CatalogGroup{Industry: def, Items: group})
			delete(byIndustry, def.Tag)
		}
	}
	// Rows tagged with an industry that is no longer registered still show.
	leftover := make([]string, 0, len(byIndustry))
	for tag := range byIndustry {
		leftover = append(leftover, tag)
	}
	sort.Strings(leftover)
	for _, tag := range leftover {
		def := IndustryFor(tag)
		def.Tag, def.Label = tag, tag
		listing.Groups = append(listing.Groups, CatalogGroup{Industry: def, Items: byIndustry[tag]})
	}

	return listing
}
