package core

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/JonMunkholm/storefront/internal/logging"
	"github.com/google/uuid"
)

// RegisterStore validates a submitted shop form and creates the store.
// Validation problems come back as ValidationErrors with nothing persisted;
// a failed insert comes back as a *UserError.
func (s *Service) RegisterStore(ctx context.Context, form url.Values) (db.Store, error) {
	params, verrs := ParseShopForm(form, s.now())
	if len(verrs) > 0 {
		return db.Store{}, verrs
	}

	store, err := s.repo.CreateStore(ctx, params)
	if err != nil {
		logging.FromContext(ctx).Error("create store failed",
			"shop_name", params.ShopName,
			"industry", params.Industry,
			"error", err,
		)
		return db.Store{}, NewUserError(fmt.Errorf("save store: %w", err))
	}

	var reason string
	if requested := CleanValue(form.Get(FieldIndustry)); requested != store.Industry {
		reason = fmt.Sprintf("industry %q is not registered; filed under %s", requested, store.Industry)
	}

	s.LogAudit(ctx, AuditLogParams{
		Action:       ActionStoreCreate,
		EntityType:   EntityStore,
		EntityID:     store.ID,
		RowsAffected: 1,
		RowData: map[string]interface{}{
			"shopName":   store.ShopName,
			"industry":   store.Industry,
			"prefecture": store.Prefecture,
		},
		Reason: reason,
	})

	logging.FromContext(ctx).Info("store registered",
		"store_id", store.ID,
		"industry", store.Industry,
	)
	return store, nil
}

// SaveCatalog parses the raw menuData value and stores the surviving rows
// for storeID in one transaction. The store's own industry decides which
// optional attributes are kept.
func (s *Service) SaveCatalog(ctx context.Context, storeID int64, menuData string) (CatalogBatch, error) {
	store, err := s.repo.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CatalogBatch{}, ErrNoSession
		}
		return CatalogBatch{}, NewUserError(fmt.Errorf("save catalog: %w", err))
	}

	def := IndustryFor(store.Industry)
	drafts, dropped, err := ParseCatalogDrafts(menuData, def, s.maxCatalogItems)
	if err != nil {
		return CatalogBatch{Dropped: dropped}, err
	}

	params := make([]db.CreateCatalogItemParams, len(drafts))
	for i, d := range drafts {
		params[i] = d.Params(store.ID, def.Tag)
	}

	batchID := uuid.New()
	log := logging.WithFields(ctx, "batch_id", batchID.String(), "store_id", store.ID)

	if err := s.batches.Acquire(ctx); err != nil {
		log.Warn("catalog batch slot unavailable", "rows", len(params), "error", err)
		return CatalogBatch{Dropped: dropped}, err
	}
	items, err := s.repo.CreateCatalogItems(ctx, params)
	s.batches.Release()
	if err != nil {
		log.Error("save catalog failed", "rows", len(params), "error", err)
		return CatalogBatch{Dropped: dropped}, NewUserError(fmt.Errorf("save catalog: %w", err))
	}

	var reason string
	if dropped > 0 {
		reason = fmt.Sprintf("%d incomplete rows dropped", dropped)
	}

	s.LogAudit(ctx, AuditLogParams{
		Action:       ActionCatalogCreate,
		EntityType:   EntityStore,
		EntityID:     store.ID,
		RowsAffected: len(items),
		BatchID:      batchID,
		RowData: map[string]interface{}{
			"industry": def.Tag,
			"dropped":  dropped,
		},
		Reason: reason,
	})

	log.Info("catalog saved", "rows", len(items), "dropped", dropped)
	return CatalogBatch{
		BatchID: batchID.String(),
		StoreID: store.ID,
		Items:   items,
		Dropped: dropped,
	}, nil
}

// UpdateCatalogItem applies a partial update to one catalog item.
func (s *Service) UpdateCatalogItem(ctx context.Context, id int64, update CatalogItemUpdate) (db.CatalogItem, error) {
	item, err := s.repo.UpdateCatalogItem(ctx, id, update)
	if err != nil {
		var verrs ValidationErrors
		if errors.Is(err, ErrNotFound) || errors.As(err, &verrs) {
			return db.CatalogItem{}, err
		}
		logging.FromContext(ctx).Error("update catalog item failed", "id", id, "error", err)
		return db.CatalogItem{}, NewUserError(fmt.Errorf("update catalog: %w", err))
	}

	s.LogAudit(ctx, AuditLogParams{
		Action:       ActionCatalogUpdate,
		EntityType:   EntityCatalogItem,
		EntityID:     item.ID,
		RowsAffected: 1,
		RowData:      catalogRowData(item),
	})
	return item, nil
}

// DeleteCatalogItem hard-deletes one catalog item.
func (s *Service) DeleteCatalogItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCatalogItem(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		logging.FromContext(ctx).Error("delete catalog item failed", "id", id, "error", err)
		return NewUserError(fmt.Errorf("delete catalog: %w", err))
	}

	s.LogAudit(ctx, AuditLogParams{
		Action:       ActionCatalogDelete,
		EntityType:   EntityCatalogItem,
		EntityID:     id,
		RowsAffected: 1,
	})
	return nil
}

func catalogRowData(item db.CatalogItem) map[string]interface{} {
	return map[string]interface{}{
		"storeId":     item.StoreID,
		"name":        item.Name,
		"price":       item.Price,
		"isAvailable": item.IsAvailable,
	}
}
