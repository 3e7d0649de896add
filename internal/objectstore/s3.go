package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// Store reads uploaded image attributes and relocates images that need
// human triage.
type Store interface {
	// Metadata returns the user metadata attached to an object at
	// upload time, keyed exactly as stored.
	Metadata(ctx context.Context, bucket, key string) (map[string]string, error)

	// CopyToReview copies an object into the manual-review bucket
	// under its original key. The source object is left in place.
	CopyToReview(ctx context.Context, bucket, key string) error
}

type S3Store struct {
	client       *s3.Client
	reviewBucket string
	log          zerolog.Logger
}

func NewS3Store(client *s3.Client, reviewBucket string, log zerolog.Logger) *S3Store {
	return &S3Store{
		client:       client,
		reviewBucket: reviewBucket,
		log:          log,
	}
}

func (s *S3Store) Metadata(ctx context.Context, bucket, key string) (map[string]string, error) {
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head object %s/%s: %w", bucket, key, err)
	}
	return head.Metadata, nil
}

// copySource builds the URL-encoded source reference the S3 copy API
// requires. Path separators inside the key stay as separators. A '+'
// must be escaped by hand: the copy API decodes it as a space.
func copySource(bucket, key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = strings.ReplaceAll(url.PathEscape(segment), "+", "%2B")
	}
	return bucket + "/" + strings.Join(segments, "/")
}

func (s *S3Store) CopyToReview(ctx context.Context, bucket, key string) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.reviewBucket),
		Key:        aws.String(key),
		CopySource: aws.String(copySource(bucket, key)),
	})
	if err != nil {
		return fmt.Errorf("copy %s/%s to review bucket: %w", bucket, key, err)
	}

	s.log.Info().
		Str("bucket", bucket).
		Str("key", key).
		Str("review_bucket", s.reviewBucket).
		Msg("copied image to manual-review bucket")

	return nil
}
