package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const catalogColumns = `id, store_id, industry, name, price, description, image_url,
	category, allergy_info, is_available, created_at, updated_at`

func scanCatalogItem(row interface{ Scan(...any) error }) (CatalogItem, error) {
	var i CatalogItem
	err := row.Scan(
		&i.ID,
		&i.StoreID,
		&i.Industry,
		&i.Name,
		&i.Price,
		&i.Description,
		&i.ImageUrl,
		&i.Category,
		&i.AllergyInfo,
		&i.IsAvailable,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createCatalogItem = `INSERT INTO catalog_items (
	store_id, industry, name, price, description, image_url, category, allergy_info, is_available
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, TRUE
)
RETURNING ` + catalogColumns

type CreateCatalogItemParams struct {
	StoreID     int64
	Industry    string
	Name        string
	Price       int32
	Description pgtype.Text
	ImageUrl    pgtype.Text
	Category    pgtype.Text
	AllergyInfo pgtype.Text
}

func (q *Queries) CreateCatalogItem(ctx context.Context, arg CreateCatalogItemParams) (CatalogItem, error) {
	row := q.db.QueryRow(ctx, createCatalogItem,
		arg.StoreID,
		arg.Industry,
		arg.Name,
		arg.Price,
		arg.Description,
		arg.ImageUrl,
		arg.Category,
		arg.AllergyInfo,
	)
	return scanCatalogItem(row)
}

const getCatalogItem = `SELECT ` + catalogColumns + ` FROM catalog_items WHERE id = $1`

func (q *Queries) GetCatalogItem(ctx context.Context, id int64) (CatalogItem, error) {
	return scanCatalogItem(q.db.QueryRow(ctx, getCatalogItem, id))
}

const getCatalogItemForUpdate = getCatalogItem + ` FOR UPDATE`

// GetCatalogItemForUpdate locks the row until the surrounding transaction ends.
func (q *Queries) GetCatalogItemForUpdate(ctx context.Context, id int64) (CatalogItem, error) {
	return scanCatalogItem(q.db.QueryRow(ctx, getCatalogItemForUpdate, id))
}

const listAvailableCatalogItems = `SELECT ` + catalogColumns + `
FROM catalog_items
WHERE is_available
	AND ($1::text IS NULL OR industry = $1)
	AND ($2::bigint IS NULL OR store_id = $2)
ORDER BY created_at DESC, id DESC`

// ListAvailableCatalogItemsParams narrows the listing; invalid fields match all rows.
type ListAvailableCatalogItemsParams struct {
	Industry pgtype.Text
	StoreID  pgtype.Int8
}

func (q *Queries) ListAvailableCatalogItems(ctx context.Context, arg ListAvailableCatalogItemsParams) ([]CatalogItem, error) {
	rows, err := q.db.Query(ctx, listAvailableCatalogItems, arg.Industry, arg.StoreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CatalogItem
	for rows.Next() {
		i, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCatalogItem = `UPDATE catalog_items SET
	name = $2,
	price = $3,
	description = $4,
	image_url = $5,
	category = $6,
	allergy_info = $7,
	is_available = $8,
	updated_at = now()
WHERE id = $1
RETURNING ` + catalogColumns

type UpdateCatalogItemParams struct {
	ID          int64
	Name        string
	Price       int32
	Description pgtype.Text
	ImageUrl    pgtype.Text
	Category    pgtype.Text
	AllergyInfo pgtype.Text
	IsAvailable bool
}

func (q *Queries) UpdateCatalogItem(ctx context.Context, arg UpdateCatalogItemParams) (CatalogItem, error) {
	row := q.db.QueryRow(ctx, updateCatalogItem,
		arg.ID,
		arg.Name,
		arg.Price,
		arg.Description,
		arg.ImageUrl,
		arg.Category,
		arg.AllergyInfo,
		arg.IsAvailable,
	)
	return scanCatalogItem(row)
}

const deleteCatalogItem = `DELETE FROM catalog_items WHERE id = $1`

// DeleteCatalogItem hard-deletes a row and reports how many rows went away.
func (q *Queries) DeleteCatalogItem(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCatalogItem, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
