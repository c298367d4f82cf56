package database

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Store is one row of the stores table.
type Store struct {
	ID             int64              `json:"id"`
	ShopName       string             `json:"shopName"`
	Industry       string             `json:"industry"`
	Description    string             `json:"description"`
	Established    pgtype.Int4        `json:"established"`
	Prefecture     string             `json:"prefecture"`
	City           string             `json:"city"`
	StreetAddress  string             `json:"streetAddress"`
	Phone          pgtype.Text        `json:"phone"`
	Email          pgtype.Text        `json:"email"`
	OpeningTime    string             `json:"openingTime"`
	ClosingTime    string             `json:"closingTime"`
	RegularHoliday pgtype.Text        `json:"regularHoliday"`
	Parking        pgtype.Text        `json:"parking"`
	WebsiteUrl     pgtype.Text        `json:"websiteUrl"`
	InstagramUrl   pgtype.Text        `json:"instagramUrl"`
	XUrl           pgtype.Text        `json:"xUrl"`
	Announcement   pgtype.Text        `json:"announcement"`
	CreatedAt      pgtype.Timestamptz `json:"createdAt"`
}

// CatalogItem is one row of the catalog_items table. Every industry's
// menu/product rows share this table and are told apart by Industry.
type CatalogItem struct {
	ID          int64              `json:"id"`
	StoreID     int64              `json:"storeId"`
	Industry    string             `json:"industry"`
	Name        string             `json:"name"`
	Price       int32              `json:"price"`
	Description pgtype.Text        `json:"description"`
	ImageUrl    pgtype.Text        `json:"imageUrl"`
	Category    pgtype.Text        `json:"category"`
	AllergyInfo pgtype.Text        `json:"allergyInfo"`
	IsAvailable bool               `json:"isAvailable"`
	CreatedAt   pgtype.Timestamptz `json:"createdAt"`
	UpdatedAt   pgtype.Timestamptz `json:"updatedAt"`
}

// AuditLog is one row of the audit_log table.
type AuditLog struct {
	ID           pgtype.UUID        `json:"id"`
	Action       string             `json:"action"`
	Severity     string             `json:"severity"`
	EntityType   string             `json:"entityType"`
	EntityID     pgtype.Int8        `json:"entityId"`
	IpAddress    pgtype.Text        `json:"ipAddress"`
	UserAgent    pgtype.Text        `json:"userAgent"`
	RowsAffected int32              `json:"rowsAffected"`
	BatchID      pgtype.UUID        `json:"batchId"`
	RowData      []byte             `json:"rowData"`
	Reason       pgtype.Text        `json:"reason"`
	CreatedAt    pgtype.Timestamptz `json:"createdAt"`
}
