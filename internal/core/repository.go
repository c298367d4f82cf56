package core

import (
	"context"

	db "github.com/JonMunkholm/storefront/internal/database"
)

// Repository is the access layer for stores, catalog items and the audit log.
//
// Every operation reports failure through its error. Lookups of a missing
// row return ErrNotFound; validation failures from UpdateCatalogItem are
// ValidationErrors. Nothing is swallowed here: callers decide how to degrade.
type Repository interface {
	CreateStore(ctx context.Context, params db.CreateStoreParams) (db.Store, error)
	GetStore(ctx context.Context, id int64) (db.Store, error)
	ListStores(ctx context.Context) ([]db.Store, error)

	// CreateCatalogItems inserts all rows or none. A single item is a
	// one-row batch.
	CreateCatalogItems(ctx context.Context, params []db.CreateCatalogItemParams) ([]db.CatalogItem, error)
	GetCatalogItem(ctx context.Context, id int64) (db.CatalogItem, error)
	// ListActiveCatalogItems returns available items, newest first.
	ListActiveCatalogItems(ctx context.Context, filter CatalogFilter) ([]db.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, id int64, update CatalogItemUpdate) (db.CatalogItem, error)
	DeleteCatalogItem(ctx context.Context, id int64) error

	InsertAuditLog(ctx context.Context, params db.InsertAuditLogParams) (db.AuditLog, error)
	ListAuditLogs(ctx context.Context, limit int32) ([]db.AuditLog, error)

	Ping(ctx context.Context) error
}
