package plate

import (
	"errors"
)

var (
	ErrNotTargetJurisdiction = errors.New("image is not from the target jurisdiction")
	ErrNoValidPlate          = errors.New("no valid plate found")
)

// Extractor scans the text blocks detected in one image for a plate
// number. An image is accepted only when one of the blocks exactly
// matches the jurisdiction marker.
type Extractor struct {
	jurisdiction string
}

func NewExtractor(jurisdiction string) *Extractor {
	return &Extractor{jurisdiction: jurisdiction}
}

// Extract scans the blocks once and returns the last block that passes
// plate validation. A non-validating block never erases an earlier
// validated candidate. Jurisdiction and candidate are tracked
// independently; nothing ties them to the same region of the image.
func (e *Extractor) Extract(blocks []string) (string, error) {
	var confirmed bool
	var candidate string
	for _, text := range blocks {
		if text == e.jurisdiction {
			confirmed = true
		}
		if IsValid(text) {
			candidate = text
		}
	}
	if !confirmed {
		return "", ErrNotTargetJurisdiction
	}
	if candidate == "" {
		return "", ErrNoValidPlate
	}
	return candidate, nil
}
