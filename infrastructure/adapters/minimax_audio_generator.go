package adapters

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mylxsw/voice-gen-mcp/application/ports/outbound"
	"github.com/mylxsw/voice-gen-mcp/config"
	"github.com/mylxsw/voice-gen-mcp/domain"
)

// MinimaxRequest is the t2a_v2 request body. The voice is selected through a
// single timber_weights entry; voice_setting and language_boost carry fixed
// values the API requires.
type MinimaxRequest struct {
	Model         string         `json:"model"`
	Text          string         `json:"text"`
	TimberWeights []TimberWeight `json:"timber_weights"`
	VoiceSetting  VoiceSetting   `json:"voice_setting"`
	AudioSetting  AudioSetting   `json:"audio_setting"`
	LanguageBoost string         `json:"language_boost"`
}

type TimberWeight struct {
	VoiceID string `json:"voice_id"`
	Weight  int    `json:"weight"`
}

type VoiceSetting struct {
	VoiceID   string  `json:"voice_id"`
	Speed     float64 `json:"speed"`
	Pitch     float64 `json:"pitch"`
	Volume    float64 `json:"vol"`
	LatexRead bool    `json:"latex_read"`
}

type AudioSetting struct {
	SampleRate int    `json:"sample_rate"`
	Bitrate    int    `json:"bitrate"`
	Format     string `json:"format"`
}

type minimaxResponse struct {
	Data struct {
		Audio string `json:"audio"`
	} `json:"data"`
}

type minimaxAudioGenerator struct {
	ContentFetcher
	conf      *config.MinimaxConfig
	audioConf *config.AudioConfig
	logger    outbound.LoggerPort
}

func NewMinimaxAudioGenerator(contentFetcher ContentFetcher, conf *config.MinimaxConfig, audioConf *config.AudioConfig, logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &minimaxAudioGenerator{
		ContentFetcher: contentFetcher,
		conf:           conf,
		audioConf:      audioConf,
		logger:         logger,
	}
}

// Generate synthesizes req.Text into raw audio bytes. It makes a single
// attempt; the three failure kinds (transport, protocol, decode) surface as
// domain.SynthesisError with the matching kind.
func (g *minimaxAudioGenerator) Generate(ctx context.Context, req domain.GenerationRequest) ([]byte, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.ErrEmptyText
	}

	httpReq, err := g.getRequest(ctx, req)
	if err != nil {
		g.logger.Error(err, "Failed to construct the HTTP request for voice generation")
		return nil, &domain.SynthesisError{Kind: domain.SynthesisTransport, Err: err}
	}

	payload, err := g.FetchContent(httpReq)
	if err != nil {
		return nil, &domain.SynthesisError{Kind: domain.SynthesisTransport, Err: err}
	}

	var response minimaxResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, &domain.SynthesisError{Kind: domain.SynthesisProtocol, Err: fmt.Errorf("failed to parse API response: %w", err)}
	}

	if response.Data.Audio == "" {
		return nil, &domain.SynthesisError{Kind: domain.SynthesisProtocol, Err: errors.New("response is missing data.audio")}
	}

	audio, err := hex.DecodeString(response.Data.Audio)
	if err != nil {
		return nil, &domain.SynthesisError{Kind: domain.SynthesisDecode, Err: err}
	}

	return audio, nil
}

func (g *minimaxAudioGenerator) getRequest(ctx context.Context, req domain.GenerationRequest) (*http.Request, error) {
	model := req.Model
	if model == "" {
		model = g.conf.DefaultModel
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = g.conf.DefaultVoiceID
	}

	reqBody := MinimaxRequest{
		Model: model,
		Text:  req.Text,
		TimberWeights: []TimberWeight{
			{VoiceID: voiceID, Weight: 1},
		},
		VoiceSetting: VoiceSetting{
			VoiceID:   "",
			Speed:     1,
			Pitch:     0,
			Volume:    1,
			LatexRead: false,
		},
		AudioSetting: AudioSetting{
			SampleRate: g.audioConf.SampleRate,
			Bitrate:    g.audioConf.Bitrate,
			Format:     g.audioConf.Format,
		},
		LanguageBoost: "auto",
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	requestURL := g.conf.BaseURL + "?GroupId=" + url.QueryEscape(g.conf.GroupID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+g.conf.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
