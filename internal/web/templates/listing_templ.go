package templates

// Renders the markup of listing.templ; `templ generate` replaces this file.

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/storefront/internal/core"
	db "github.com/JonMunkholm/storefront/internal/database"
	"github.com/a-h/templ"
	"github.com/jackc/pgx/v5/pgtype"
)

// Listing renders every store and every available catalog item. Optional
// attributes are only shown when present.
func Listing(data ListingData) templ.Component {
	return Layout("Registered shops", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<h1>Registered shops</h1>`)
		if data.Warning != "" {
			h.component(WarningBanner(data.Warning))
		}

		h.raw(`<section class="stores"><h2>Shops (`, strconv.Itoa(len(data.Stores)), `)</h2>`)
		if len(data.Stores) == 0 {
			h.raw(`<p class="empty">No shops registered yet.</p>`)
		}
		for _, st := range data.Stores {
			writeStore(h, st)
		}
		h.raw(`</section>`)

		h.raw(`<section class="catalog"><h2>Catalog (`, strconv.Itoa(data.ItemCount), `)</h2>`)
		if len(data.Groups) == 0 {
			h.raw(`<p class="empty">No catalog items yet.</p>`)
		}
		for _, g := range data.Groups {
			h.raw(`<div class="catalog-group"><h3>`)
			h.text(g.Industry.Label)
			h.raw(`</h3><ul class="catalog-items">`)
			for _, li := range g.Items {
				writeCatalogItem(h, li)
			}
			h.raw(`</ul></div>`)
		}
		h.raw(`</section>`)
		return h.done()
	}))
}

func writeStore(h *htmlWriter, st db.Store) {
	h.raw(`<article class="store"`)
	h.attr("id", storeAnchor(st))
	h.raw(`><h3>`)
	h.text(st.ShopName)
	h.raw(`</h3><p class="meta">`)
	h.text(core.IndustryFor(st.Industry).Label)
	if st.Established.Valid {
		h.raw(` &middot; since `)
		h.text(formatYear(st.Established))
	}
	h.raw(`</p><p>`)
	h.text(st.Description)
	h.raw(`</p><dl>`)

	writeDetail(h, "Address", storeAddress(st))
	writeDetail(h, "Hours", storeHours(st))
	writeOptional(h, "Regular holiday", st.RegularHoliday)
	writeOptional(h, "Phone", st.Phone)
	writeOptional(h, "Email", st.Email)
	if st.Parking.Valid {
		writeDetail(h, "Parking", core.ParkingLabel(st.Parking.String))
	}
	writeLink(h, "Website", st.WebsiteUrl)
	writeLink(h, "Instagram", st.InstagramUrl)
	writeLink(h, "X", st.XUrl)
	writeOptional(h, "Announcement", st.Announcement)
	writeDetail(h, "Registered", formatTimestamp(st.CreatedAt))
	h.raw(`</dl></article>`)
}

func writeCatalogItem(h *htmlWriter, li core.ListedItem) {
	item := li.Item
	h.raw(`<li class="catalog-item">`)
	if item.ImageUrl.Valid {
		h.raw(`<img loading="lazy" alt=""`)
		h.attr("src", string(templ.URL(item.ImageUrl.String)))
		h.raw(`>`)
	}
	h.raw(`<div><strong>`)
	h.text(item.Name)
	h.raw(`</strong> <span class="price">`)
	h.text(formatYen(item.Price))
	h.raw(`</span>`)
	if li.ShopName != "" {
		h.raw(`<p class="meta">`)
		h.text(li.ShopName)
		h.raw(`</p>`)
	}
	if item.Description.Valid {
		h.raw(`<p>`)
		h.text(item.Description.String)
		h.raw(`</p>`)
	}
	if item.Category.Valid {
		h.raw(`<p class="meta">Category: `)
		h.text(item.Category.String)
		h.raw(`</p>`)
	}
	if item.AllergyInfo.Valid {
		h.raw(`<p class="meta">Allergens: `)
		h.text(item.AllergyInfo.String)
		h.raw(`</p>`)
	}
	h.raw(`</div></li>`)
}

func writeDetail(h *htmlWriter, label, value string) {
	h.raw(`<dt>`)
	h.text(label)
	h.raw(`</dt><dd>`)
	h.text(value)
	h.raw(`</dd>`)
}

func writeOptional(h *htmlWriter, label string, v pgtype.Text) {
	if v.Valid {
		writeDetail(h, label, v.String)
	}
}

func writeLink(h *htmlWriter, label string, v pgtype.Text) {
	if !v.Valid {
		return
	}
	h.raw(`<dt>`)
	h.text(label)
	h.raw(`</dt><dd><a rel="noopener noreferrer"`)
	h.href(v.String)
	h.raw(`>`)
	h.text(v.String)
	h.raw(`</a></dd>`)
}
