package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/domain/ticket"
)

// explanation is the fixed English opening of every notification. Only
// this sentence is translated; the summary block stays English.
const explanation = "Your vehicle was involved in a traffic violation. Please pay the specified ticket amount by 30 days: "

// Translator converts English text into a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

// Composer builds the notification body for an enriched violation.
type Composer struct {
	translator Translator
	log        zerolog.Logger
}

func NewComposer(translator Translator, log zerolog.Logger) *Composer {
	return &Composer{
		translator: translator,
		log:        log,
	}
}

// Compose resolves the owner's preferred language, translates the
// explanation when the target is not English, and appends the summary
// block in a fixed field order. Translation failure falls back to the
// English explanation; delivering the notification outranks localizing
// it. An empty preferred language means English.
func (c *Composer) Compose(ctx context.Context, v ticket.Violation) (string, error) {
	language := v.PreferredLanguage
	if language == "" {
		language = "English"
	}

	code, err := LanguageCode(language)
	if err != nil {
		return "", err
	}

	text := explanation
	if code != "en" {
		translated, err := c.translator.Translate(ctx, explanation, code)
		if err != nil {
			c.log.Warn().
				Err(err).
				Str("language", language).
				Str("code", code).
				Msg("translation failed, sending English notification")
		} else {
			text = translated
		}
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Vehicle: %s %s %s\n", v.Color, v.Make, v.Model)
	fmt.Fprintf(&b, "License plate: %s\n", v.Plate)
	fmt.Fprintf(&b, "Date: %s\n", v.Date)
	fmt.Fprintf(&b, "Violation address: %s\n", v.ViolationLocation)
	fmt.Fprintf(&b, "Violation type: %s\n", v.ViolationType)
	fmt.Fprintf(&b, "Ticket amount: %d\n", v.TicketAmount)

	return b.String(), nil
}
