package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContextRoundTrip(t *testing.T) {
	reqCtx := &RequestContext{Headers: map[string]string{"X-API-Key": "value"}}

	ctx := WithRequestContext(context.Background(), reqCtx)

	assert.Same(t, reqCtx, RequestContextFrom(ctx))
	assert.Nil(t, RequestContextFrom(context.Background()))
}

func TestNewRequestContext_FlattensHeaders(t *testing.T) {
	header := http.Header{}
	header.Add("Authorization", "Bearer token")
	header.Add("X-Api-Key", "first")
	header.Add("X-Api-Key", "second")

	reqCtx := newRequestContext(header)

	require.NotNil(t, reqCtx)
	assert.Equal(t, "Bearer token", reqCtx.Headers["Authorization"])
	// Only the first value of a repeated header is kept.
	assert.Equal(t, "first", reqCtx.Headers["X-Api-Key"])
}
