package plate

import (
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	extractor := NewExtractor("California")

	tests := []struct {
		name      string
		blocks    []string
		wantPlate string
		wantErr   error
	}{
		{
			name:    "wrong jurisdiction with valid candidate",
			blocks:  []string{"Washington", "7X3Y921"},
			wantErr: ErrNotTargetJurisdiction,
		},
		{
			name:    "jurisdiction confirmed but no valid plate",
			blocks:  []string{"California", "INVALID!"},
			wantErr: ErrNoValidPlate,
		},
		{
			name:      "last validated candidate wins",
			blocks:    []string{"California", "1A2B3C4", "junk", "8Z9Q111"},
			wantPlate: "8Z9Q111",
		},
		{
			name:      "later invalid block keeps earlier candidate",
			blocks:    []string{"California", "1A2B3C4", "NOT A PLATE"},
			wantPlate: "1A2B3C4",
		},
		{
			name:      "jurisdiction after plate",
			blocks:    []string{"3CDE451", "California"},
			wantPlate: "3CDE451",
		},
		{
			name:    "empty scan",
			blocks:  nil,
			wantErr: ErrNotTargetJurisdiction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract(tt.blocks)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract() unexpected error: %v", err)
			}
			if got != tt.wantPlate {
				t.Errorf("Extract() = %q, want %q", got, tt.wantPlate)
			}
		})
	}
}
