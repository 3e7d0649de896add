package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/domain/ticket"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/objectstore"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/plate"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/queue"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/vision"
)

// Object metadata keys set by the uploader.
const (
	metaKeyLocation  = "location"
	metaKeyDate      = "date"
	metaKeyViolation = "violation"
)

// PlateReaderService is stage one: it turns an upload notification
// into a ticket on the ticket queue, or routes the image to manual
// review when it is not from the target jurisdiction.
type PlateReaderService struct {
	scanner   vision.Scanner
	store     objectstore.Store
	extractor *plate.Extractor
	log       zerolog.Logger
}

func NewPlateReaderService(
	scanner vision.Scanner,
	store objectstore.Store,
	extractor *plate.Extractor,
	log zerolog.Logger,
) *PlateReaderService {
	return &PlateReaderService{
		scanner:   scanner,
		store:     store,
		extractor: extractor,
		log:       log,
	}
}

// uploadEvent is the subset of the S3 notification shape this stage
// consumes.
type uploadEvent struct {
	Records []struct {
		S3 struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key string `json:"key"`
			} `json:"object"`
		} `json:"s3"`
	} `json:"Records"`
}

// Process handles one upload notification and returns the ticket-queue
// payload, or "" when the image went to manual review.
func (s *PlateReaderService) Process(ctx context.Context, body string) (string, error) {
	var event uploadEvent
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		return "", queue.Terminal(fmt.Errorf("malformed upload event: %w", err))
	}
	if len(event.Records) == 0 {
		return "", queue.Terminal(errors.New("upload event has no records"))
	}

	bucket := event.Records[0].S3.Bucket.Name
	key := event.Records[0].S3.Object.Key
	// Notification keys arrive URL-encoded.
	if decoded, err := url.QueryUnescape(key); err == nil {
		key = decoded
	}
	if bucket == "" || key == "" {
		return "", queue.Terminal(errors.New("upload event is missing bucket or key"))
	}

	blocks, err := s.scanner.DetectText(ctx, bucket, key)
	if err != nil {
		return "", fmt.Errorf("detect text: %w", err)
	}

	texts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		texts = append(texts, block.Text)
	}

	plateNumber, err := s.extractor.Extract(texts)
	switch {
	case errors.Is(err, plate.ErrNotTargetJurisdiction):
		if copyErr := s.store.CopyToReview(ctx, bucket, key); copyErr != nil {
			return "", fmt.Errorf("relocate for manual review: %w", copyErr)
		}
		s.log.Info().
			Str("bucket", bucket).
			Str("key", key).
			Msg("image routed to manual review")
		return "", nil
	case errors.Is(err, plate.ErrNoValidPlate):
		return "", queue.Terminal(fmt.Errorf("image %s/%s: %w", bucket, key, err))
	case err != nil:
		return "", err
	}

	meta, err := s.store.Metadata(ctx, bucket, key)
	if err != nil {
		return "", fmt.Errorf("read object metadata: %w", err)
	}

	t, err := ticket.New(plateNumber, ticket.Metadata{
		Violation: meta[metaKeyViolation],
		Location:  meta[metaKeyLocation],
		Date:      meta[metaKeyDate],
	})
	if err != nil {
		return "", queue.Terminal(fmt.Errorf("image %s/%s: %w", bucket, key, err))
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return "", queue.Terminal(fmt.Errorf("encode ticket: %w", err))
	}

	s.log.Info().
		Str("plate", t.Plate).
		Str("violation", t.Violation).
		Int("amount", t.Amount).
		Str("key", key).
		Msg("ticket created")

	return string(payload), nil
}
