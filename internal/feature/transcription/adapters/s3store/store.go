// Package s3store provides an S3-backed object store for audio files and
// transcripts.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/harikrishnanks99/Ethnoverse/internal/feature/transcription/usecase"
)

// Config holds the connection settings for the object store.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string // optional, for MinIO-compatible deployments
	AccessKeyID     string
	SecretAccessKey string
}

// S3ObjectStore implements usecase.ObjectStore on top of S3.
type S3ObjectStore struct {
	client *s3.Client
	bucket string
}

// Compile-time check that S3ObjectStore implements ObjectStore.
var _ usecase.ObjectStore = (*S3ObjectStore)(nil)

// NewS3ObjectStore builds an S3 client with static credentials. A non-empty
// endpoint switches the client to path-style addressing for
// MinIO-compatible stores.
func NewS3ObjectStore(ctx context.Context, cfg Config, httpClient *http.Client) (*S3ObjectStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	}
	if httpClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(httpClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

// Put stores an object under the given key.
func (s *S3ObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3 put %q: %w", key, err)
	}
	return nil
}
