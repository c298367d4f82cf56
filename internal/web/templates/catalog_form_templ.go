package templates

// Renders the markup of catalog_form.templ; `templ generate` replaces this file.

import (
	"context"
	"io"

	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/a-h/templ"
)

// CatalogForm renders the per-industry catalog step.
func CatalogForm(data CatalogFormData) templ.Component {
	return Layout(data.title(), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<h1>Register your `)
		h.text(data.noun())
		h.raw(`</h1><p class="step">Step 2 of 2`)
		if data.ShopName != "" {
			h.raw(` &middot; `)
			h.text(data.ShopName)
		}
		h.raw(`</p>`)

		if data.Alert != nil {
			h.component(ErrorAlert(data.Alert.Message, data.Alert.Action, data.Alert.Code))
		}
		if len(data.Errors) > 0 {
			h.raw(`<ul class="field-errors">`)
			for _, e := range data.Errors {
				h.raw(`<li>`)
				h.text(e.Error())
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}

		h.raw(`<p class="hint">Rows without a name or a price are skipped.</p>`)
		h.raw(`<form method="post" id="catalog-form" class="catalog-form"`)
		h.attr("action", data.Industry.FormPath)
		h.attr("data-fields", capabilityFields(data.Industry.Capabilities))
		if v := data.maxItemsAttr(); v != "" {
			h.attr("data-max-items", v)
		}
		h.raw(`>`)
		h.raw(`<input type="hidden" id="menuData"`)
		h.attr("name", core.FieldMenuData)
		h.attr("value", data.MenuData)
		h.raw(`>`)
		h.raw(`<div id="catalog-rows" class="catalog-rows"></div>`,
			`<button type="button" id="add-row" class="secondary">Add item</button>`,
			`<noscript><p class="alert alert-warning">Adding items needs JavaScript enabled.</p></noscript>`,
			`<button type="submit">Register</button></form>`,
			`<script src="/static/catalog.js" defer></script>`)
		return h.done()
	}))
}
