package templates

// Renders the markup of layout.templ; `templ generate` replaces this file.

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the shared page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		if title != "" {
			h.text(title)
			h.raw(" | ")
		}
		h.text(AppName)
		h.raw(`</title><link rel="stylesheet" href="/static/style.css"></head><body>`,
			`<header class="site-header"><a href="/form">`)
		h.text(AppName)
		h.raw(`</a><nav><a href="/form">Register</a> <a href="/data">Registered shops</a></nav></header>`,
			`<main>`)
		h.component(body)
		h.raw(`</main></body></html>`)
		return h.done()
	})
}
