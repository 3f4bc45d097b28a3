package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/mylxsw/voice-gen-mcp/application/ports/outbound"
	"github.com/mylxsw/voice-gen-mcp/config"
	"github.com/mylxsw/voice-gen-mcp/domain"
)

const (
	audioContentType = "audio/mpeg"
	uniqueIDLength   = 8
	objectLifetime   = 30 * 24 * time.Hour
)

// S3API is the slice of the S3 client this store needs; *s3.S3 satisfies it.
type S3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

type s3MediaStore struct {
	s3Svc  S3API
	conf   *config.S3Config
	logger outbound.LoggerPort

	now         func() time.Time
	newUniqueID func() string
}

func NewS3MediaStore(s3Svc S3API, conf *config.S3Config, logger outbound.LoggerPort) outbound.MediaStorePort {
	return &s3MediaStore{
		s3Svc:  s3Svc,
		conf:   conf,
		logger: logger,
		now:    time.Now,
		newUniqueID: func() string {
			return uuid.NewString()[:uniqueIDLength]
		},
	}
}

// Upload stores the audio under a date-partitioned key and returns the public
// URL. The object carries advisory creation/expiration metadata plus an
// Expires attribute 30 days out; nothing here enforces the expiry.
func (s *s3MediaStore) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	record := s.newUploadRecord(filename)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.conf.BucketName),
		Key:           aws.String(record.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(audioContentType),
		Metadata: map[string]*string{
			"created-date":    aws.String(record.CreatedAt.Format(time.RFC3339)),
			"expiration-date": aws.String(record.ExpiresAt.Format(time.RFC3339)),
			"unique-id":       aws.String(record.UniqueID),
		},
		Expires: aws.Time(record.ExpiresAt),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload object to S3", map[string]interface{}{
			"bucket": s.conf.BucketName,
			"key":    record.Key,
		})
		return "", classifyStorageError(err)
	}

	publicURL := s.publicURLBase() + "/" + record.Key
	s.logger.InfoWithFields("Audio uploaded to S3", map[string]interface{}{
		"key":     record.Key,
		"expires": record.ExpiresAt.Format(time.RFC3339),
		"url":     publicURL,
	})

	return publicURL, nil
}

// newUploadRecord computes the storage key from the current UTC date and a
// fresh 8-character unique id. UTC keeps the date partition deterministic
// regardless of where the process runs.
func (s *s3MediaStore) newUploadRecord(filename string) domain.UploadRecord {
	createdAt := s.now().UTC()
	uniqueID := s.newUniqueID()

	return domain.UploadRecord{
		Key:       buildStorageKey(s.conf.Prefix, createdAt, uniqueID, filename),
		UniqueID:  uniqueID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(objectLifetime),
	}
}

func buildStorageKey(prefix string, createdAt time.Time, uniqueID string, filename string) string {
	return fmt.Sprintf("%s%04d/%02d/%02d_%s_%s",
		prefix, createdAt.Year(), int(createdAt.Month()), createdAt.Day(), uniqueID, filename)
}

func (s *s3MediaStore) publicURLBase() string {
	if s.conf.PublicURLBase != "" {
		return strings.TrimSuffix(s.conf.PublicURLBase, "/")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.conf.BucketName, s.conf.Region)
}

// classifyStorageError separates missing/invalid credentials from every other
// backend rejection.
func classifyStorageError(err error) error {
	var awsErr awserr.Error
	if errors.As(err, &awsErr) {
		switch awsErr.Code() {
		case "NoCredentialProviders", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken", "MissingAuthenticationToken":
			return &domain.StorageError{Kind: domain.StorageCredentials, Err: err}
		}
	}

	return &domain.StorageError{Kind: domain.StorageBackend, Err: err}
}
