package domain

import "time"

// GenerationRequest carries the parameters of a single voice generation call.
// Model and VoiceID may be empty, in which case configured defaults apply.
type GenerationRequest struct {
	Text    string
	Model   string
	VoiceID string
}

// UploadRecord describes an uploaded audio object. ExpiresAt is advisory
// metadata; the storage backend or an external lifecycle policy is expected
// to act on it.
type UploadRecord struct {
	Key       string
	UniqueID  string
	CreatedAt time.Time
	ExpiresAt time.Time
}
