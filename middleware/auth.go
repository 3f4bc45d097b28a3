package middleware

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/mylxsw/voice-gen-mcp/application/ports/outbound"
	"github.com/mylxsw/voice-gen-mcp/config"
	"github.com/mylxsw/voice-gen-mcp/domain"
)

const (
	fallbackHeaderName = "X-API-Key"
	bearerPrefix       = "Bearer "
	metadataAPIKeyName = "api_key"

	// AuthRequiredMessage is the terminal result of a rejected invocation.
	AuthRequiredMessage = "Authentication error: Authentication required. Please provide a valid API key."
)

// ToolFunc is a single tool invocation reduced to its string result.
type ToolFunc func(ctx context.Context, reqCtx *RequestContext, req domain.GenerationRequest) string

// AuthGate validates an inbound credential against the configured secret and
// wraps protected handlers so that rejected calls never reach them.
type AuthGate interface {
	IsAuthenticated(reqCtx *RequestContext) bool
	Wrap(next ToolFunc) ToolFunc
}

type apiKeyGate struct {
	logger outbound.LoggerPort
	conf   *config.AuthConfig
}

func NewAPIKeyGate(logger outbound.LoggerPort, conf *config.AuthConfig) AuthGate {
	return &apiKeyGate{
		logger: logger,
		conf:   conf,
	}
}

// IsAuthenticated returns true when auth is disabled, otherwise true iff the
// extracted credential exactly equals the configured secret.
func (g *apiKeyGate) IsAuthenticated(reqCtx *RequestContext) bool {
	if !g.conf.Enabled {
		return true
	}

	if reqCtx == nil {
		g.logger.Warn("No request context provided for authentication check")
		return false
	}

	apiKey := g.extractAPIKey(reqCtx)
	if apiKey == "" {
		g.logger.Warn("No API key provided in request")
		return false
	}

	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(g.conf.APIKey)) != 1 {
		g.logger.Warn("Invalid API key provided")
		return false
	}

	return true
}

// Wrap short-circuits the wrapped handler with the authentication-required
// message; the inner handler is never invoked on rejection.
func (g *apiKeyGate) Wrap(next ToolFunc) ToolFunc {
	if !g.conf.Enabled || !g.conf.RequireAuthForTools {
		return next
	}

	return func(ctx context.Context, reqCtx *RequestContext, req domain.GenerationRequest) string {
		if !g.IsAuthenticated(reqCtx) {
			return AuthRequiredMessage
		}

		return next(ctx, reqCtx, req)
	}
}

// extractAPIKey checks the configured header, then Authorization (stripping a
// Bearer prefix), then X-API-Key, then the api_key metadata field.
func (g *apiKeyGate) extractAPIKey(reqCtx *RequestContext) string {
	for _, headerName := range []string{g.conf.HeaderName, "Authorization", fallbackHeaderName} {
		if value := lookupHeader(reqCtx.Headers, headerName); value != "" {
			return strings.TrimPrefix(value, bearerPrefix)
		}
	}

	if value := reqCtx.Metadata[metadataAPIKeyName]; value != "" {
		return value
	}

	return ""
}

func lookupHeader(headers map[string]string, name string) string {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}

	return ""
}
