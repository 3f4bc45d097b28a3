package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearMinimaxEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"VOICE_GEN_API_BASE_URL", "VOICE_GEN_API_GROUP_ID", "VOICE_GEN_API_KEY",
		"VOICE_GEN_DEFAULT_MODEL", "VOICE_GEN_DEFAULT_VOICE_ID", "VOICE_GEN_HTTP_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func clearS3Env(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"S3_BUCKET_NAME", "S3_REGION", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY",
		"S3_ENDPOINT", "S3_PREFIX", "S3_PUBLIC_URL_BASE",
	} {
		t.Setenv(key, "")
	}
}

func TestGetMinimaxConfig_RequiredVars(t *testing.T) {
	clearMinimaxEnv(t)

	_, err := GetMinimaxConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VOICE_GEN_API_GROUP_ID")

	t.Setenv("VOICE_GEN_API_GROUP_ID", "group-1")

	_, err = GetMinimaxConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VOICE_GEN_API_KEY")
}

func TestGetMinimaxConfig_Defaults(t *testing.T) {
	clearMinimaxEnv(t)
	t.Setenv("VOICE_GEN_API_GROUP_ID", "group-1")
	t.Setenv("VOICE_GEN_API_KEY", "sk-test")

	conf, err := GetMinimaxConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://api.minimax.chat/v1/t2a_v2", conf.BaseURL)
	assert.Equal(t, "speech-2.5-hd-preview", conf.DefaultModel)
	assert.Equal(t, "mylxsw_voice_1", conf.DefaultVoiceID)
	assert.Equal(t, 60, conf.TimeoutSeconds)
}

func TestGetMinimaxConfig_InvalidTimeout(t *testing.T) {
	clearMinimaxEnv(t)
	t.Setenv("VOICE_GEN_API_GROUP_ID", "group-1")
	t.Setenv("VOICE_GEN_API_KEY", "sk-test")
	t.Setenv("VOICE_GEN_HTTP_TIMEOUT_SECONDS", "soon")

	_, err := GetMinimaxConfig()

	assert.Error(t, err)
}

func TestGetAudioConfig_Defaults(t *testing.T) {
	t.Setenv("VOICE_GEN_AUDIO_SAMPLE_RATE", "")
	t.Setenv("VOICE_GEN_AUDIO_BITRATE", "")
	t.Setenv("VOICE_GEN_AUDIO_FORMAT", "")

	conf, err := GetAudioConfig()

	require.NoError(t, err)
	assert.Equal(t, 32000, conf.SampleRate)
	assert.Equal(t, 128000, conf.Bitrate)
	assert.Equal(t, "mp3", conf.Format)
}

func TestGetAudioConfig_InvalidSampleRate(t *testing.T) {
	t.Setenv("VOICE_GEN_AUDIO_SAMPLE_RATE", "fast")

	_, err := GetAudioConfig()

	assert.Error(t, err)
}

func TestGetS3Config_RequiredVars(t *testing.T) {
	clearS3Env(t)

	_, err := GetS3Config()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET_NAME")
}

func TestGetS3Config_Defaults(t *testing.T) {
	clearS3Env(t)
	t.Setenv("S3_BUCKET_NAME", "my-bucket")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_ACCESS_KEY_ID", "AKIA")
	t.Setenv("S3_SECRET_ACCESS_KEY", "secret")

	conf, err := GetS3Config()

	require.NoError(t, err)
	assert.Equal(t, "https://s3.amazonaws.com", conf.Endpoint)
	assert.Equal(t, "voice-gen/", conf.Prefix)
	assert.Empty(t, conf.PublicURLBase)
}

func TestNewAuthConfig_DisabledByDefault(t *testing.T) {
	t.Setenv("MCP_AUTH_ENABLED", "")
	t.Setenv("MCP_AUTH_API_KEY", "")
	t.Setenv("MCP_AUTH_HEADER_NAME", "")
	t.Setenv("MCP_AUTH_REQUIRE_FOR_TOOLS", "")

	conf, err := NewAuthConfig()

	require.NoError(t, err)
	assert.False(t, conf.Enabled)
	assert.Equal(t, "X-API-Key", conf.HeaderName)
	assert.True(t, conf.RequireAuthForTools)
}

func TestNewAuthConfig_EnabledRequiresKey(t *testing.T) {
	t.Setenv("MCP_AUTH_ENABLED", "true")
	t.Setenv("MCP_AUTH_API_KEY", "")

	_, err := NewAuthConfig()

	assert.Error(t, err)
}

func TestNewAuthConfig_Enabled(t *testing.T) {
	t.Setenv("MCP_AUTH_ENABLED", "true")
	t.Setenv("MCP_AUTH_API_KEY", "s3cret")
	t.Setenv("MCP_AUTH_HEADER_NAME", "X-Custom-Key")
	t.Setenv("MCP_AUTH_REQUIRE_FOR_TOOLS", "false")

	conf, err := NewAuthConfig()

	require.NoError(t, err)
	assert.True(t, conf.Enabled)
	assert.Equal(t, "s3cret", conf.APIKey)
	assert.Equal(t, "X-Custom-Key", conf.HeaderName)
	assert.False(t, conf.RequireAuthForTools)
}

func TestGetServerConfig(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("MCP_SERVER_HOST", "")
	t.Setenv("MCP_SERVER_PORT", "")

	conf, err := GetServerConfig()

	require.NoError(t, err)
	assert.Equal(t, TransportStdio, conf.Transport)
	assert.Equal(t, "0.0.0.0", conf.Host)
	assert.Equal(t, 8000, conf.Port)
}

func TestGetServerConfig_UnsupportedTransport(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := GetServerConfig()

	assert.Error(t, err)
}
