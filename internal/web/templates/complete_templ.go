package templates

// Renders the markup of complete.templ; `templ generate` replaces this file.

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Complete is the fixed page shown after the catalog is saved.
func Complete() templ.Component {
	return Layout("Registration complete", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<section class="complete"><h1>Registration complete</h1>`,
			`<p>Thank you. Your shop and its catalog have been registered.</p>`,
			`<p><a href="/data">See registered shops</a> or <a href="/form">register another shop</a>.</p>`,
			`</section>`)
		return h.done()
	}))
}
