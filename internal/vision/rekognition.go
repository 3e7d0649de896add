package vision

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/rs/zerolog"
)

// TextBlock is one text fragment detected in an image.
type TextBlock struct {
	Text       string
	Confidence float64
}

// Scanner detects text blocks in a stored image.
type Scanner interface {
	DetectText(ctx context.Context, bucket, key string) ([]TextBlock, error)
}

// RekognitionScanner runs Rekognition DetectText against an object
// already sitting in S3, so image bytes never pass through the stage.
type RekognitionScanner struct {
	client *rekognition.Client
	log    zerolog.Logger
}

func NewRekognitionScanner(client *rekognition.Client, log zerolog.Logger) *RekognitionScanner {
	return &RekognitionScanner{
		client: client,
		log:    log,
	}
}

func (s *RekognitionScanner) DetectText(ctx context.Context, bucket, key string) ([]TextBlock, error) {
	input := &rekognition.DetectTextInput{
		Image: &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
	}

	result, err := s.client.DetectText(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("rekognition detect text: %w", err)
	}

	blocks := make([]TextBlock, 0, len(result.TextDetections))
	for _, detection := range result.TextDetections {
		if detection.DetectedText == nil {
			continue
		}
		block := TextBlock{Text: *detection.DetectedText}
		if detection.Confidence != nil {
			block.Confidence = float64(*detection.Confidence)
		}
		blocks = append(blocks, block)
	}

	s.log.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Int("blocks", len(blocks)).
		Msg("detected text in image")

	return blocks, nil
}
