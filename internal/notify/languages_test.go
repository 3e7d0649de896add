package notify

import (
	"errors"
	"testing"
)

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"English", "en"},
		{"english", "en"},
		{"SPANISH", "es"},
		{"Chinese (Traditional)", "zh-TW"},
		{"vietnamese", "vi"},
	}

	for _, tt := range tests {
		got, err := LanguageCode(tt.name)
		if err != nil {
			t.Fatalf("LanguageCode(%q) unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("LanguageCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLanguageCodeUnknown(t *testing.T) {
	for _, name := range []string{"Klingon", ""} {
		if _, err := LanguageCode(name); !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("LanguageCode(%q) error = %v, want ErrUnknownLanguage", name, err)
		}
	}
}
