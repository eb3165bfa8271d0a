package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"ngo_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingReportsBucket = errors.New("missing REPORTS_BUCKET")

// S3PutAPI is the subset of *s3.Client used by S3ReportStore.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ReportStore keeps admin exports (CSV) in a private bucket.
type S3ReportStore struct {
	client S3PutAPI
	bucket string
}

var _ interfaces.IReportStore = (*S3ReportStore)(nil)

func NewS3ReportStore(client S3PutAPI, bucket string) (*S3ReportStore, error) {
	if bucket == "" {
		return nil, ErrMissingReportsBucket
	}
	return &S3ReportStore{client: client, bucket: bucket}, nil
}

// NewS3ReportStoreFromEnv returns nil (exports disabled) when REPORTS_BUCKET is unset.
func NewS3ReportStoreFromEnv(client S3PutAPI) *S3ReportStore {
	store, err := NewS3ReportStore(client, os.Getenv("REPORTS_BUCKET"))
	if err != nil {
		log.Printf("[storage][s3] report exports disabled: %v", err)
		return nil
	}
	return store
}

// Put uploads body under key and returns its s3:// location.
func (s *S3ReportStore) Put(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	log.Printf("[storage][s3] uploaded bucket=%s key=%s bytes=%d", s.bucket, key, len(body))
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
