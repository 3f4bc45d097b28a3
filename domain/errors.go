package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyText rejects generation requests whose text is empty after trimming.
var ErrEmptyText = errors.New("text cannot be empty")

// SynthesisErrorKind distinguishes the three ways a synthesis call can fail.
type SynthesisErrorKind int

const (
	// SynthesisTransport covers network failures and non-success HTTP statuses.
	SynthesisTransport SynthesisErrorKind = iota
	// SynthesisProtocol covers responses that parse but lack the audio field.
	SynthesisProtocol
	// SynthesisDecode covers malformed hex in the audio field.
	SynthesisDecode
)

// SynthesisError wraps a failure of the speech API call. The wrapped error
// never contains the bearer credential.
type SynthesisError struct {
	Kind SynthesisErrorKind
	Err  error
}

func (e *SynthesisError) Error() string {
	switch e.Kind {
	case SynthesisProtocol:
		return fmt.Sprintf("unexpected API response format: %v", e.Err)
	case SynthesisDecode:
		return fmt.Sprintf("error decoding audio data: %v", e.Err)
	default:
		return fmt.Sprintf("error making API request: %v", e.Err)
	}
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

// StorageErrorKind distinguishes credential problems from other backend rejections.
type StorageErrorKind int

const (
	StorageBackend StorageErrorKind = iota
	StorageCredentials
)

// StorageError wraps a failure of the object store upload.
type StorageError struct {
	Kind StorageErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	if e.Kind == StorageCredentials {
		return fmt.Sprintf("S3 credentials not found: %v", e.Err)
	}
	return fmt.Sprintf("S3 upload error: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
