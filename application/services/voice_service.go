package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mylxsw/voice-gen-mcp/application/ports/inbound"
	"github.com/mylxsw/voice-gen-mcp/application/ports/outbound"
	"github.com/mylxsw/voice-gen-mcp/domain"
)

// The timestamp lives in the storage key; the filename stays constant.
const audioFilename = "voice.mp3"

const emptyTextMessage = "Error: Text cannot be empty"

type voiceService struct {
	logger         outbound.LoggerPort
	audioGenerator outbound.AudioGeneratorPort
	mediaStore     outbound.MediaStorePort
}

func NewVoiceService(logger outbound.LoggerPort, audioGenerator outbound.AudioGeneratorPort, mediaStore outbound.MediaStorePort) inbound.VoiceGeneratorPort {
	return &voiceService{
		logger:         logger,
		audioGenerator: audioGenerator,
		mediaStore:     mediaStore,
	}
}

// GenerateVoice validates the request, synthesizes audio and uploads it.
// Every outcome is a single string; failed validation makes no downstream
// call, and failed synthesis never reaches the upload.
func (s *voiceService) GenerateVoice(ctx context.Context, req domain.GenerationRequest) string {
	if strings.TrimSpace(req.Text) == "" {
		s.logger.Warn("Rejected voice generation request with empty text")
		return emptyTextMessage
	}

	s.logger.InfoWithFields("Generating voice", map[string]interface{}{
		"text":     truncateText(req.Text, 50),
		"model":    req.Model,
		"voice_id": req.VoiceID,
	})

	audio, err := s.audioGenerator.Generate(ctx, req)
	if err != nil {
		s.logger.Error(err, "Failed to generate voice audio")

		if errors.Is(err, domain.ErrEmptyText) {
			return emptyTextMessage
		}

		var synthErr *domain.SynthesisError
		if errors.As(err, &synthErr) {
			return fmt.Sprintf("Voice generation error: %v", synthErr)
		}

		return fmt.Sprintf("Unexpected error: %v", err)
	}

	publicURL, err := s.mediaStore.Upload(ctx, audio, audioFilename)
	if err != nil {
		s.logger.Error(err, "Failed to upload audio to S3")
		return fmt.Sprintf("Unexpected error: %v", err)
	}

	s.logger.InfoWithFields("Voice generated and uploaded successfully", map[string]interface{}{
		"url":  publicURL,
		"size": len(audio),
	})

	return fmt.Sprintf("Successfully generated voice audio and uploaded to S3.\nURL: %s\nSize: %d bytes", publicURL, len(audio))
}

func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit]) + "..."
}
