package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultBaseURL        = "https://api.minimax.chat/v1/t2a_v2"
	defaultModel          = "speech-2.5-hd-preview"
	defaultVoiceID        = "mylxsw_voice_1"
	defaultTimeoutSeconds = 60
)

type MinimaxConfig struct {
	BaseURL        string
	GroupID        string
	APIKey         string
	DefaultModel   string
	DefaultVoiceID string
	TimeoutSeconds int
}

func GetMinimaxConfig() (*MinimaxConfig, error) {
	groupID := os.Getenv("VOICE_GEN_API_GROUP_ID")
	if groupID == "" {
		return nil, fmt.Errorf("VOICE_GEN_API_GROUP_ID environment variable not set")
	}

	apiKey := os.Getenv("VOICE_GEN_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("VOICE_GEN_API_KEY environment variable not set")
	}

	baseURL := os.Getenv("VOICE_GEN_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := os.Getenv("VOICE_GEN_DEFAULT_MODEL")
	if model == "" {
		model = defaultModel
	}

	voiceID := os.Getenv("VOICE_GEN_DEFAULT_VOICE_ID")
	if voiceID == "" {
		voiceID = defaultVoiceID
	}

	timeoutSeconds := defaultTimeoutSeconds
	if timeout := os.Getenv("VOICE_GEN_HTTP_TIMEOUT_SECONDS"); timeout != "" {
		timeoutVal, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to parse VOICE_GEN_HTTP_TIMEOUT_SECONDS: %w", err)
		}
		timeoutSeconds = timeoutVal
	}

	return &MinimaxConfig{
		BaseURL:        baseURL,
		GroupID:        groupID,
		APIKey:         apiKey,
		DefaultModel:   model,
		DefaultVoiceID: voiceID,
		TimeoutSeconds: timeoutSeconds,
	}, nil
}
