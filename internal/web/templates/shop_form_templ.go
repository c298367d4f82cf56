package templates

// Renders the markup of shop_form.templ; `templ generate` replaces this file.

import (
	"context"
	"io"

	"github.com/JonMunkholm/storefront/internal/core"
	"github.com/a-h/templ"
)

// ShopForm renders step one of the registration.
func ShopForm(data ShopFormData) templ.Component {
	return Layout("Shop information", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<h1>Shop information</h1><p class="step">Step 1 of 2</p>`)
		if data.Alert != nil {
			h.component(ErrorAlert(data.Alert.Message, data.Alert.Action, data.Alert.Code))
		}
		h.raw(`<form method="post"`)
		h.attr("action", core.FormPath)
		h.raw(` class="shop-form" novalidate>`)
		for _, f := range shopFields {
			writeShopField(h, f, data, data.Values.Get(f.name), data.Errors.Field(f.name))
		}
		h.raw(`<button type="submit">Next</button></form>`)
		return h.done()
	}))
}

func writeShopField(h *htmlWriter, f shopField, data ShopFormData, value, msg string) {
	h.raw(`<div class="field`)
	if msg != "" {
		h.raw(` field-invalid`)
	}
	h.raw(`"><label`)
	h.attr("for", f.name)
	h.raw(`>`)
	h.text(f.label)
	if f.required {
		h.raw(` <span class="required">*</span>`)
	}
	h.raw(`</label>`)

	switch {
	case f.kind == "textarea":
		h.raw(`<textarea`)
		writeControlAttrs(h, f, msg)
		h.raw(` rows="4">`)
		h.text(value)
		h.raw(`</textarea>`)
	case f.isSelect():
		h.raw(`<select`)
		writeControlAttrs(h, f, msg)
		h.raw(`>`)
		for _, opt := range f.options(data.Industries) {
			h.raw(`<option`)
			h.attr("value", opt.Value)
			if opt.Value != "" && opt.Value == value {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(opt.Label)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
	default:
		h.raw(`<input`)
		h.attr("type", f.kind)
		writeControlAttrs(h, f, msg)
		h.attr("value", value)
		if f.hint != "" {
			h.attr("placeholder", f.hint)
		}
		h.raw(`>`)
	}

	if msg != "" {
		h.raw(`<p class="field-error"`)
		h.attr("id", f.errorID())
		h.raw(`>`)
		h.text(msg)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}

// writeControlAttrs writes f.controlAttributes in a fixed order.
func writeControlAttrs(h *htmlWriter, f shopField, msg string) {
	attrs := f.controlAttributes(msg)
	for _, name := range []string{"id", "name", "required", "aria-invalid", "aria-describedby"} {
		switch v := attrs[name].(type) {
		case string:
			h.attr(name, v)
		case bool:
			if v {
				h.raw(" ", name)
			}
		}
	}
}
