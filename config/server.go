package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

type ServerConfig struct {
	Transport string
	Host      string
	Port      int
}

func GetServerConfig() (*ServerConfig, error) {
	transport := os.Getenv("MCP_TRANSPORT")
	if transport == "" {
		transport = TransportStdio
	}

	switch transport {
	case TransportStdio, TransportHTTP, TransportSSE:
	default:
		return nil, fmt.Errorf("unsupported MCP_TRANSPORT value: %s", transport)
	}

	host := os.Getenv("MCP_SERVER_HOST")
	if host == "" {
		host = "0.0.0.0"
	}

	port := 8000
	if v := os.Getenv("MCP_SERVER_PORT"); v != "" {
		portVal, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse MCP_SERVER_PORT: %w", err)
		}
		port = portVal
	}

	return &ServerConfig{
		Transport: transport,
		Host:      host,
		Port:      port,
	}, nil
}
