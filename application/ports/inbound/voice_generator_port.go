package inbound

import (
	"context"

	"github.com/mylxsw/voice-gen-mcp/domain"
)

// VoiceGeneratorPort runs a full voice generation: validation, synthesis,
// upload. Every outcome, success or failure, is a single human-readable
// string; no error escapes this boundary.
type VoiceGeneratorPort interface {
	GenerateVoice(ctx context.Context, req domain.GenerationRequest) string
}
