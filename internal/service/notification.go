package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/domain/ticket"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/notify"
	"github.com/kylewhite0225/cloud-ml-license-reader/internal/queue"
)

// NotificationService is stage three: it composes the localized
// notification for an enriched violation and emails it to the owner.
type NotificationService struct {
	composer *notify.Composer
	mailer   notify.Mailer
	log      zerolog.Logger
}

func NewNotificationService(composer *notify.Composer, mailer notify.Mailer, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		composer: composer,
		mailer:   mailer,
		log:      log,
	}
}

// Process handles one violation message. There is no output queue.
func (s *NotificationService) Process(ctx context.Context, body string) (string, error) {
	var violation ticket.Violation
	if err := json.Unmarshal([]byte(body), &violation); err != nil {
		return "", queue.Terminal(fmt.Errorf("malformed violation message: %w", err))
	}
	if violation.Plate == "" {
		return "", queue.Terminal(errors.New("violation message has no plate"))
	}

	message, err := s.composer.Compose(ctx, violation)
	if errors.Is(err, notify.ErrUnknownLanguage) {
		return "", queue.Terminal(err)
	}
	if err != nil {
		return "", fmt.Errorf("compose notification: %w", err)
	}

	if violation.Contact == "" {
		// Unregistered plate made it all the way here; there is no
		// address to deliver to, only a record for follow-up.
		s.log.Warn().
			Str("plate", violation.Plate).
			Str("violation_type", violation.ViolationType).
			Msg("no owner contact on violation, manual follow-up required")
		return "", nil
	}

	if err := s.mailer.Send(ctx, violation.Contact, message); err != nil {
		return "", fmt.Errorf("deliver notification: %w", err)
	}

	s.log.Info().
		Str("plate", violation.Plate).
		Str("contact", violation.Contact).
		Int("amount", violation.TicketAmount).
		Msg("notification delivered")

	return "", nil
}
