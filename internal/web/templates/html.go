// Package templates holds the HTML components of the registration UI.
//
// Each component is written in a .templ file. The matching *_templ.go file
// renders the same markup through htmlWriter and is what the build uses
// until `templ generate` is run, which replaces it with generated code.
// Page data types and helpers live in plain .go files shared by both.
//
// Handlers render every component the same way:
//
//	templates.ShopForm(data).Render(r.Context(), w)
package templates

//go:generate templ generate

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/jackc/pgx/v5/pgtype"
)

// AppName is shown in the page header and title.
const AppName = "Shop Registration"

// htmlWriter writes markup and remembers the first write error, so a
// component body reads top to bottom without an error check per line.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes escaped user content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute, replacing unsafe schemes.
func (h *htmlWriter) href(u string) {
	h.attr("href", string(templ.URL(u)))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func (h *htmlWriter) done() error {
	return h.err
}

// formatYen renders a price as "¥1,200".
func formatYen(price int32) string {
	s := strconv.FormatInt(int64(price), 10)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-¥" + b.String()
	}
	return "¥" + b.String()
}

func formatTimestamp(ts pgtype.Timestamptz) string {
	if !ts.Valid {
		return ""
	}
	return ts.Time.Format("2006-01-02 15:04")
}

func formatYear(y pgtype.Int4) string {
	if !y.Valid {
		return ""
	}
	return fmt.Sprintf("%d", y.Int32)
}
