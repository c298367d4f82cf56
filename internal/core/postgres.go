package core

import (
	"context"
	"errors"
	"fmt"

	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/jackc/pgx/v5"
)

// Pool is the subset of *pgxpool.Pool the repository needs.
type Pool interface {
	db.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// PostgresRepository implements Repository on a pgx pool.
type PostgresRepository struct {
	pool Pool
}

// NewPostgresRepository returns a repository using pool. The caller owns the
// pool and closes it on shutdown.
func NewPostgresRepository(pool Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var _ Repository = (*PostgresRepository)(nil)

// notFound converts pgx.ErrNoRows to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepository) queries() *db.Queries {
	return db.New(r.pool)
}

func (r *PostgresRepository) CreateStore(ctx context.Context, params db.CreateStoreParams) (db.Store, error) {
	store, err := r.queries().CreateStore(ctx, params)
	if err != nil {
		return db.Store{}, fmt.Errorf("insert store: %w", err)
	}
	return store, nil
}

func (r *PostgresRepository) GetStore(ctx context.Context, id int64) (db.Store, error) {
	store, err := r.queries().GetStore(ctx, id)
	if err != nil {
		return db.Store{}, fmt.Errorf("get store %d: %w", id, notFound(err))
	}
	return store, nil
}

func (r *PostgresRepository) ListStores(ctx context.Context) ([]db.Store, error) {
	stores, err := r.queries().ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// CreateCatalogItems inserts every row inside one transaction. The first
// failing row rolls the whole batch back.
func (r *PostgresRepository) CreateCatalogItems(ctx context.Context, params []db.CreateCatalogItemParams) ([]db.CatalogItem, error) {
	items := make([]db.CatalogItem, 0, len(params))
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := db.New(r.pool).WithTx(tx)
		for i, p := range params {
			item, err := q.CreateCatalogItem(ctx, p)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("insert catalog batch: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) GetCatalogItem(ctx context.Context, id int64) (db.CatalogItem, error) {
	item, err := r.queries().GetCatalogItem(ctx, id)
	if err != nil {
		return db.CatalogItem{}, fmt.Errorf("get catalog item %d: %w", id, notFound(err))
	}
	return item, nil
}

func (r *PostgresRepository) ListActiveCatalogItems(ctx context.Context, filter CatalogFilter) ([]db.CatalogItem, error) {
	items, err := r.queries().ListAvailableCatalogItems(ctx, filter.Params())
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	return items, nil
}

// UpdateCatalogItem locks the row, merges the update and writes it back in
// one transaction.
func (r *PostgresRepository) UpdateCatalogItem(ctx context.Context, id int64, update CatalogItemUpdate) (db.CatalogItem, error) {
	var updated db.CatalogItem
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := db.New(r.pool).WithTx(tx)

		current, err := q.GetCatalogItemForUpdate(ctx, id)
		if err != nil {
			return notFound(err)
		}

		params, err := update.Apply(current)
		if err != nil {
			return err
		}

		updated, err = q.UpdateCatalogItem(ctx, params)
		return err
	})
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			return db.CatalogItem{}, err
		}
		return db.CatalogItem{}, fmt.Errorf("update catalog item %d: %w", id, err)
	}
	return updated, nil
}

func (r *PostgresRepository) DeleteCatalogItem(ctx context.Context, id int64) error {
	n, err := r.queries().DeleteCatalogItem(ctx, id)
	if err != nil {
		return fmt.Errorf("delete catalog item %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete catalog item %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) InsertAuditLog(ctx context.Context, params db.InsertAuditLogParams) (db.AuditLog, error) {
	entry, err := r.queries().InsertAuditLog(ctx, params)
	if err != nil {
		return db.AuditLog{}, fmt.Errorf("insert audit log: %w", err)
	}
	return entry, nil
}

func (r *PostgresRepository) ListAuditLogs(ctx context.Context, limit int32) ([]db.AuditLog, error) {
	entries, err := r.queries().ListAuditLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return entries, nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
