package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestContext is the typed view of an inbound invocation that the auth
// gate operates on: a flat header map for HTTP transports and an optional
// metadata map for transports without headers (e.g. stdio).
type RequestContext struct {
	Headers  map[string]string
	Metadata map[string]string
}

type requestContextKey struct{}

func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, reqCtx)
}

// RequestContextFrom returns the RequestContext attached to ctx, or nil.
func RequestContextFrom(ctx context.Context) *RequestContext {
	reqCtx, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return reqCtx
}

// RequestContextMiddleware captures inbound HTTP headers into a
// RequestContext so that handlers running below the MCP transport can still
// authenticate the call.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			WithRequestContext(c.Request.Context(), newRequestContext(c.Request.Header)),
		)
		c.Next()
	}
}

func newRequestContext(header http.Header) *RequestContext {
	headers := make(map[string]string, len(header))
	for name, values := range header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	return &RequestContext{Headers: headers}
}
