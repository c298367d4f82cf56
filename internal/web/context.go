package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/storefront/internal/core"
	mw "github.com/JonMunkholm/storefront/internal/web/middleware"
)

// WithRequestMetadata adds the client IP and User-Agent to ctx so audit
// entries written while handling r record who made the change.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ctx = core.ContextWithIPAddress(ctx, mw.ClientIP(r))
	ctx = core.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}
