package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/domain/ticket"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/queue"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/registry"
)

// EnrichmentService is stage two: it resolves a ticket's plate against
// the DMV registry and republishes the merged violation record. The
// rename from the ticket queue's field names to the violation queue's
// happens here and nowhere else.
type EnrichmentService struct {
	registry registry.Lookup
	log      zerolog.Logger
}

func NewEnrichmentService(reg registry.Lookup, log zerolog.Logger) *EnrichmentService {
	return &EnrichmentService{
		registry: reg,
		log:      log,
	}
}

// Process handles one ticket message and returns the violation-queue
// payload.
func (s *EnrichmentService) Process(ctx context.Context, body string) (string, error) {
	var t ticket.Ticket
	if err := json.Unmarshal([]byte(body), &t); err != nil {
		return "", queue.Terminal(fmt.Errorf("malformed ticket message: %w", err))
	}
	if t.Plate == "" {
		return "", queue.Terminal(errors.New("ticket message has no plate"))
	}

	record, err := s.registry.FindByPlate(ctx, t.Plate)
	if err != nil {
		return "", fmt.Errorf("registry lookup for %s: %w", t.Plate, err)
	}
	if record == nil {
		// Unregistered plate; forward ticket-only fields so a human
		// can follow up.
		s.log.Info().Str("plate", t.Plate).Msg("plate not found in registry")
	}

	violation := ticket.Enrich(t, record)

	payload, err := json.Marshal(violation)
	if err != nil {
		return "", queue.Terminal(fmt.Errorf("encode violation: %w", err))
	}

	s.log.Info().
		Str("plate", violation.Plate).
		Str("violation_type", violation.ViolationType).
		Bool("registered", record != nil).
		Msg("violation enriched")

	return string(payload), nil
}
