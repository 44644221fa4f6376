package usecase

import (
	"fmt"
	"strings"

	"github.com/sugarcheck/backend/internal/domain"
)

// Typical barcode lengths: EAN-8, UPC-A, EAN-13, GTIN-14.
var barcodeLengths = map[int]bool{8: true, 12: true, 13: true, 14: true}

// ValidateSearchQuery checks a food name query and returns the trimmed form.
func ValidateSearchQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", fmt.Errorf("%w: please enter a food name", domain.ErrInvalidInput)
	}
	if len(trimmed) < 2 {
		return "", fmt.Errorf("%w: search term must be at least 2 characters", domain.ErrInvalidInput)
	}
	if len(trimmed) > 100 {
		return "", fmt.Errorf("%w: search term must be under 100 characters", domain.ErrInvalidInput)
	}
	return trimmed, nil
}

// CleanBarcode strips the spaces and dashes commonly typed into barcodes.
func CleanBarcode(code string) string {
	code = strings.ReplaceAll(code, " ", "")
	return strings.ReplaceAll(code, "-", "")
}

// ValidateBarcode cleans a barcode and checks it is a plausible EAN/UPC/GTIN
// number, returning the cleaned form.
func ValidateBarcode(code string) (string, error) {
	clean := CleanBarcode(strings.TrimSpace(code))
	if clean == "" {
		return "", fmt.Errorf("%w: please enter a barcode number", domain.ErrInvalidInput)
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: barcode should contain only numbers", domain.ErrInvalidInput)
		}
	}
	if !barcodeLengths[len(clean)] {
		return "", fmt.Errorf("%w: barcode should be 8, 12, 13, or 14 digits long", domain.ErrInvalidInput)
	}
	return clean, nil
}

// ValidatePortion checks a portion size in grams.
func ValidatePortion(portionG float64) error {
	if portionG < 1 || portionG > 1000 {
		return fmt.Errorf("%w: portion must be between 1 and 1000 grams", domain.ErrInvalidInput)
	}
	return nil
}
