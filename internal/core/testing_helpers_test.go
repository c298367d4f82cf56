package core

import db "github.com/JonMunkholm/storefront/internal/database"

func testCatalogItem() db.CatalogItem {
	return db.CatalogItem{
		ID:          1,
		StoreID:     1,
		Industry:    "restaurant",
		Name:        "Pizza",
		Price:       1200,
		Category:    ToPgText("Main"),
		IsAvailable: true,
	}
}
