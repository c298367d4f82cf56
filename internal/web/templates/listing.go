package templates

import (
	"strconv"

	"github.com/JonMunkholm/storefront/internal/core"
	db "github.com/JonMunkholm/storefront/internal/database"
)

// ListingData is the /data page model.
type ListingData struct {
	core.Listing
	Warning string
}

func storeAnchor(st db.Store) string {
	return "store-" + strconv.FormatInt(st.ID, 10)
}

func storeAddress(st db.Store) string {
	return st.Prefecture + " " + st.City + " " + st.StreetAddress
}

func storeHours(st db.Store) string {
	return st.OpeningTime + " - " + st.ClosingTime
}
