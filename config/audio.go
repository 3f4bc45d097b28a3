package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultSampleRate  = 32000
	defaultBitrate     = 128000
	defaultAudioFormat = "mp3"
)

type AudioConfig struct {
	SampleRate int
	Bitrate    int
	Format     string
}

func GetAudioConfig() (*AudioConfig, error) {
	sampleRate := defaultSampleRate
	if rate := os.Getenv("VOICE_GEN_AUDIO_SAMPLE_RATE"); rate != "" {
		rateVal, err := strconv.Atoi(rate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse VOICE_GEN_AUDIO_SAMPLE_RATE: %w", err)
		}
		sampleRate = rateVal
	}

	bitrate := defaultBitrate
	if rate := os.Getenv("VOICE_GEN_AUDIO_BITRATE"); rate != "" {
		rateVal, err := strconv.Atoi(rate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse VOICE_GEN_AUDIO_BITRATE: %w", err)
		}
		bitrate = rateVal
	}

	format := os.Getenv("VOICE_GEN_AUDIO_FORMAT")
	if format == "" {
		format = defaultAudioFormat
	}

	return &AudioConfig{
		SampleRate: sampleRate,
		Bitrate:    bitrate,
		Format:     format,
	}, nil
}
