package templates

// Renders the markup of alert.templ; `templ generate` replaces this file.

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ErrorAlert renders a user-facing error with its suggested action and the
// support code. It is used for full pages and HTMX fragments alike.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<div class="alert alert-error" role="alert"><p class="alert-message">`)
		h.text(message)
		h.raw(`</p>`)
		if action != "" {
			h.raw(`<p class="alert-action">`)
			h.text(action)
			h.raw(`</p>`)
		}
		if code != "" {
			h.raw(`<p class="alert-code">Code: `)
			h.text(code)
			h.raw(`</p>`)
		}
		h.raw(`</div>`)
		return h.done()
	})
}

// WarningBanner renders a non-fatal notice, such as a section that could
// not be loaded.
func WarningBanner(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<div class="alert alert-warning" role="status">`)
		h.text(message)
		h.raw(`</div>`)
		return h.done()
	})
}

// ErrorPage renders an error as a full page.
func ErrorPage(message, action, code string) templ.Component {
	return Layout("Error", ErrorAlert(message, action, code))
}
