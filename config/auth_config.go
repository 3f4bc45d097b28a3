package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultAuthHeaderName = "X-API-Key"

type AuthConfig struct {
	Enabled             bool
	APIKey              string
	HeaderName          string
	RequireAuthForTools bool
}

func NewAuthConfig() (*AuthConfig, error) {
	enabled := false
	if v := os.Getenv("MCP_AUTH_ENABLED"); v != "" {
		enabledVal, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse MCP_AUTH_ENABLED: %w", err)
		}
		enabled = enabledVal
	}

	apiKey := os.Getenv("MCP_AUTH_API_KEY")
	if enabled && apiKey == "" {
		return nil, fmt.Errorf("authentication is enabled but MCP_AUTH_API_KEY is not set")
	}

	headerName := os.Getenv("MCP_AUTH_HEADER_NAME")
	if headerName == "" {
		headerName = defaultAuthHeaderName
	}

	requireAuthForTools := true
	if v := os.Getenv("MCP_AUTH_REQUIRE_FOR_TOOLS"); v != "" {
		requireVal, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse MCP_AUTH_REQUIRE_FOR_TOOLS: %w", err)
		}
		requireAuthForTools = requireVal
	}

	return &AuthConfig{
		Enabled:             enabled,
		APIKey:              apiKey,
		HeaderName:          headerName,
		RequireAuthForTools: requireAuthForTools,
	}, nil
}
