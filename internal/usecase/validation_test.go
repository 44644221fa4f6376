package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/sugarcheck/backend/internal/domain"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{"simple query", "apple", "apple", false},
		{"trims whitespace", "  banana  ", "banana", false},
		{"minimum length", "ok", "ok", false},
		{"empty query", "", "", true},
		{"whitespace only", "   ", "", true},
		{"single character", "a", "", true},
		{"over 100 characters", strings.Repeat("x", 101), "", true},
		{"exactly 100 characters", strings.Repeat("x", 100), strings.Repeat("x", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSearchQuery(tt.query)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Errorf("ValidateSearchQuery(%q) error = %v, want ErrInvalidInput", tt.query, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateSearchQuery(%q) error = %v, want nil", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("ValidateSearchQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestCleanBarcode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"already clean", "0123456789012", "0123456789012"},
		{"strips spaces", "012 345 678", "012345678"},
		{"strips dashes", "0-12345-67890-1", "012345678901"},
		{"mixed separators", "0 12-345 678", "012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanBarcode(tt.code); got != tt.want {
				t.Errorf("CleanBarcode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestValidateBarcode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{"EAN-8", "12345678", "12345678", false},
		{"UPC-A", "123456789012", "123456789012", false},
		{"EAN-13", "1234567890123", "1234567890123", false},
		{"GTIN-14", "12345678901234", "12345678901234", false},
		{"dashes removed before length check", "1-234567-890123", "1234567890123", false},
		{"empty", "", "", true},
		{"letters", "12345678901a", "", true},
		{"too short", "1234567", "", true},
		{"unsupported length", "12345678901", "", true},
		{"too long", "123456789012345", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateBarcode(tt.code)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Errorf("ValidateBarcode(%q) error = %v, want ErrInvalidInput", tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateBarcode(%q) error = %v, want nil", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ValidateBarcode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestValidatePortion(t *testing.T) {
	tests := []struct {
		name     string
		portionG float64
		wantErr  bool
	}{
		{"typical portion", 150, false},
		{"minimum", 1, false},
		{"maximum", 1000, false},
		{"zero", 0, true},
		{"below minimum", 0.5, true},
		{"negative", -10, true},
		{"above maximum", 1001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePortion(tt.portionG)
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("ValidatePortion(%v) error = %v, want ErrInvalidInput", tt.portionG, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePortion(%v) error = %v, want nil", tt.portionG, err)
			}
		})
	}
}
