package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kylewhite0225/cloud-ml-license-reader/internal/domain/ticket"
)

type fakeTranslator struct {
	calls  int
	result string
	err    error
}

func (f *fakeTranslator) Translate(_ context.Context, text, targetCode string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.result != "" {
		return f.result, nil
	}
	return "[" + targetCode + "] " + text, nil
}

func testViolation() ticket.Violation {
	return ticket.Violation{
		Plate:             "7DZK421",
		Make:              "Honda",
		Model:             "Civic",
		Color:             "Blue",
		Name:              "Maria Lopez",
		Contact:           "maria.lopez@example.com",
		PreferredLanguage: "English",
		ViolationLocation: "45th and Stone Way intersection, Seattle",
		ViolationType:     "No right on red.",
		TicketAmount:      125,
		Date:              "January 1, 2024",
	}
}

func TestComposeEnglishSkipsTranslation(t *testing.T) {
	translator := &fakeTranslator{}
	composer := NewComposer(translator, zerolog.Nop())

	body, err := composer.Compose(context.Background(), testViolation())
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	if translator.calls != 0 {
		t.Errorf("translator called %d times for English, want 0", translator.calls)
	}
	if !strings.HasPrefix(body, "Your vehicle was involved in a traffic violation.") {
		t.Errorf("body does not start with English explanation: %q", body)
	}
}

func TestComposeEmptyLanguageDefaultsToEnglish(t *testing.T) {
	translator := &fakeTranslator{}
	composer := NewComposer(translator, zerolog.Nop())

	v := testViolation()
	v.PreferredLanguage = ""

	body, err := composer.Compose(context.Background(), v)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	if translator.calls != 0 {
		t.Errorf("translator called %d times for empty language, want 0", translator.calls)
	}
	if !strings.HasSuffix(body, "Ticket amount: 125\n") {
		t.Errorf("body does not end with ticket amount line: %q", body)
	}
}

func TestComposeTranslatesOnce(t *testing.T) {
	translator := &fakeTranslator{result: "Su vehículo estuvo involucrado en una infracción de tráfico."}
	composer := NewComposer(translator, zerolog.Nop())

	v := testViolation()
	v.PreferredLanguage = "Spanish"

	body, err := composer.Compose(context.Background(), v)
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}
	if translator.calls != 1 {
		t.Errorf("translator called %d times, want 1", translator.calls)
	}
	if !strings.HasPrefix(body, translator.result) {
		t.Errorf("body does not start with translated explanation: %q", body)
	}
	// The summary block stays English.
	if !strings.Contains(body, "Violation type: No right on red.\n") {
		t.Errorf("summary block missing or translated: %q", body)
	}
}

func TestComposeFallsBackToEnglishOnTranslationFailure(t *testing.T) {
	translator := &fakeTranslator{err: errors.New("service unavailable")}
	composer := NewComposer(translator, zerolog.Nop())

	v := testViolation()
	v.PreferredLanguage = "French"

	body, err := composer.Compose(context.Background(), v)
	if err != nil {
		t.Fatalf("Compose() should fall back, got error: %v", err)
	}
	if !strings.HasPrefix(body, "Your vehicle was involved in a traffic violation.") {
		t.Errorf("body should fall back to English explanation: %q", body)
	}
}

func TestComposeUnknownLanguageFailsBeforeTranslation(t *testing.T) {
	translator := &fakeTranslator{}
	composer := NewComposer(translator, zerolog.Nop())

	v := testViolation()
	v.PreferredLanguage = "Klingon"

	if _, err := composer.Compose(context.Background(), v); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("Compose() error = %v, want ErrUnknownLanguage", err)
	}
	if translator.calls != 0 {
		t.Errorf("translator called %d times for unknown language, want 0", translator.calls)
	}
}

func TestComposeSummaryBlockOrder(t *testing.T) {
	composer := NewComposer(&fakeTranslator{}, zerolog.Nop())

	body, err := composer.Compose(context.Background(), testViolation())
	if err != nil {
		t.Fatalf("Compose() unexpected error: %v", err)
	}

	want := "Vehicle: Blue Honda Civic\n" +
		"License plate: 7DZK421\n" +
		"Date: January 1, 2024\n" +
		"Violation address: 45th and Stone Way intersection, Seattle\n" +
		"Violation type: No right on red.\n" +
		"Ticket amount: 125\n"
	if !strings.HasSuffix(body, want) {
		t.Errorf("summary block mismatch:\ngot:  %q\nwant suffix: %q", body, want)
	}
}
