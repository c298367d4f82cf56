package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const storeColumns = `id, shop_name, industry, description, established, prefecture, city,
	street_address, phone, email, opening_time, closing_time, regular_holiday, parking,
	website_url, instagram_url, x_url, announcement, created_at`

func scanStore(row interface{ Scan(...any) error }) (Store, error) {
	var i Store
	err := row.Scan(
		&i.ID,
		&i.ShopName,
		&i.Industry,
		&i.Description,
		&i.Established,
		&i.Prefecture,
		&i.City,
		&i.StreetAddress,
		&i.Phone,
		&i.Email,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.RegularHoliday,
		&i.Parking,
		&i.WebsiteUrl,
		&i.InstagramUrl,
		&i.XUrl,
		&i.Announcement,
		&i.CreatedAt,
	)
	return i, err
}

const createStore = `INSERT INTO stores (
	shop_name, industry, description, established, prefecture, city, street_address,
	phone, email, opening_time, closing_time, regular_holiday, parking,
	website_url, instagram_url, x_url, announcement
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
)
RETURNING ` + storeColumns

// CreateStoreParams carries the coerced shop form. Optional columns are
// pgtype values with Valid=false for NULL.
type CreateStoreParams struct {
	ShopName       string
	Industry       string
	Description    string
	Established    pgtype.Int4
	Prefecture     string
	City           string
	StreetAddress  string
	Phone          pgtype.Text
	Email          pgtype.Text
	OpeningTime    string
	ClosingTime    string
	RegularHoliday pgtype.Text
	Parking        pgtype.Text
	WebsiteUrl     pgtype.Text
	InstagramUrl   pgtype.Text
	XUrl           pgtype.Text
	Announcement   pgtype.Text
}

func (q *Queries) CreateStore(ctx context.Context, arg CreateStoreParams) (Store, error) {
	row := q.db.QueryRow(ctx, createStore,
		arg.ShopName,
		arg.Industry,
		arg.Description,
		arg.Established,
		arg.Prefecture,
		arg.City,
		arg.StreetAddress,
		arg.Phone,
		arg.Email,
		arg.OpeningTime,
		arg.ClosingTime,
		arg.RegularHoliday,
		arg.Parking,
		arg.WebsiteUrl,
		arg.InstagramUrl,
		arg.XUrl,
		arg.Announcement,
	)
	return scanStore(row)
}

const getStore = `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

func (q *Queries) GetStore(ctx context.Context, id int64) (Store, error) {
	return scanStore(q.db.QueryRow(ctx, getStore, id))
}

const listStores = `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at DESC, id DESC`

func (q *Queries) ListStores(ctx context.Context) ([]Store, error) {
	rows, err := q.db.Query(ctx, listStores)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Store
	for rows.Next() {
		i, err := scanStore(rows)
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
