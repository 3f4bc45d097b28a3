package outbound

import (
	"context"

	"github.com/mylxsw/voice-gen-mcp/domain"
)

// AudioGeneratorPort converts text and voice parameters into raw audio bytes.
type AudioGeneratorPort interface {
	Generate(ctx context.Context, req domain.GenerationRequest) ([]byte, error)
}
