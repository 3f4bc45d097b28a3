package config

import (
	"fmt"
	"os"
)

const (
	defaultS3Endpoint = "https://s3.amazonaws.com"
	defaultS3Prefix   = "voice-gen/"
)

type S3Config struct {
	BucketName      string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Prefix          string
	PublicURLBase   string
}

func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("S3_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME environment variable not set")
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		return nil, fmt.Errorf("S3_REGION environment variable not set")
	}

	accessKeyID := os.Getenv("S3_ACCESS_KEY_ID")
	if accessKeyID == "" {
		return nil, fmt.Errorf("S3_ACCESS_KEY_ID environment variable not set")
	}

	secretAccessKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	if secretAccessKey == "" {
		return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY environment variable not set")
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultS3Endpoint
	}

	prefix := os.Getenv("S3_PREFIX")
	if prefix == "" {
		prefix = defaultS3Prefix
	}

	return &S3Config{
		BucketName:      bucketName,
		Region:          region,
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		Endpoint:        endpoint,
		Prefix:          prefix,
		PublicURLBase:   os.Getenv("S3_PUBLIC_URL_BASE"),
	}, nil
}
