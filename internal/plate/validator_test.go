package plate

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"valid mixed", "7ABC123", true},
		{"valid lowercase", "7abc123", true},
		{"valid single letter", "1234A56", true},
		{"letters only", "ABCDEFG", false},
		{"digits only", "1234567", false},
		{"too short", "AB12", false},
		{"too long", "7ABC1234", false},
		{"empty", "", false},
		{"punctuation", "7ABC12!", false},
		{"space inside", "7ABC 12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.candidate); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}
