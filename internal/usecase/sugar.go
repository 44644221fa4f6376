package usecase

import (
	"fmt"
	"math"

	"github.com/sugarcheck/backend/internal/domain"
)

// GramsPerTeaspoon is the standard conversion for granulated sugar.
const GramsPerTeaspoon = 4.0

// Daily added-sugar limits in grams.
const (
	WHODailyLimitG       = 25.0 // WHO adults
	AHAMaleDailyLimitG   = 36.0 // American Heart Association, men
	AHAFemaleDailyLimitG = 25.0 // American Heart Association, women
	ChildDailyLimitG     = 19.0
)

// SugarToTeaspoons converts a sugar mass in grams to teaspoon equivalents.
func SugarToTeaspoons(grams float64) float64 {
	return grams / GramsPerTeaspoon
}

// TeaspoonsToSugar converts teaspoons back to grams of sugar.
func TeaspoonsToSugar(teaspoons float64) float64 {
	return teaspoons * GramsPerTeaspoon
}

// DailyLimitPercent returns how much of a daily limit the given sugar mass
// represents, as a percentage.
func DailyLimitPercent(grams, limitG float64) float64 {
	if limitG <= 0 {
		return 0
	}
	return grams / limitG * 100
}

// HealthBands partitions sugar content (grams per 100g) into contiguous
// warning tiers. Upper bounds are inclusive: a food at exactly LowMax is
// still low sugar.
type HealthBands struct {
	LowMax      float64
	ModerateMax float64
	HighMax     float64
}

// DefaultHealthBands returns the standard tier thresholds.
func DefaultHealthBands() HealthBands {
	return HealthBands{LowMax: 5, ModerateMax: 15, HighMax: 25}
}

// Valid reports whether the band boundaries are ordered and non-negative.
func (b HealthBands) Valid() bool {
	return b.LowMax >= 0 && b.LowMax < b.ModerateMax && b.ModerateMax < b.HighMax
}

// TierFor maps a non-negative sugar amount to its warning tier.
func (b HealthBands) TierFor(grams float64) domain.HealthTier {
	switch {
	case grams <= b.LowMax:
		return domain.TierLow
	case grams <= b.ModerateMax:
		return domain.TierModerate
	case grams <= b.HighMax:
		return domain.TierHigh
	default:
		return domain.TierVeryHigh
	}
}

// Analyze converts a sugar quantity in grams into its teaspoon equivalent
// and health warning. Negative or non-finite input is rejected.
func (b HealthBands) Analyze(grams float64) (*domain.SugarAnalysis, error) {
	if math.IsNaN(grams) || math.IsInf(grams, 0) {
		return nil, fmt.Errorf("%w: sugar amount must be a finite number", domain.ErrInvalidInput)
	}
	if grams < 0 {
		return nil, fmt.Errorf("%w: sugar amount must not be negative", domain.ErrInvalidInput)
	}

	tier := b.TierFor(grams)
	return &domain.SugarAnalysis{
		SugarG:       grams,
		Teaspoons:    SugarToTeaspoons(grams),
		Tier:         tier,
		Color:        tierColors[tier],
		Message:      tierMessages[tier],
		Tips:         tierTips[tier],
		WHODailyPct:  DailyLimitPercent(grams, WHODailyLimitG),
		AHAMalePct:   DailyLimitPercent(grams, AHAMaleDailyLimitG),
		AHAFemalePct: DailyLimitPercent(grams, AHAFemaleDailyLimitG),
		ImpactScore:  tierScores[tier],
	}, nil
}

var tierColors = map[domain.HealthTier]string{
	domain.TierLow:      "green",
	domain.TierModerate: "yellow",
	domain.TierHigh:     "red",
	domain.TierVeryHigh: "darkred",
}

var tierScores = map[domain.HealthTier]int{
	domain.TierLow:      1,
	domain.TierModerate: 2,
	domain.TierHigh:     3,
	domain.TierVeryHigh: 4,
}

var tierMessages = map[domain.HealthTier]string{
	domain.TierLow:      "This food is low in sugar and is a good choice for a healthy diet.",
	domain.TierModerate: "This food contains moderate amounts of sugar. Consume in moderation.",
	domain.TierHigh:     "This food is high in sugar. Consider limiting your consumption.",
	domain.TierVeryHigh: "This food is very high in sugar. Best saved for rare occasions.",
}

var tierTips = map[domain.HealthTier][]string{
	domain.TierLow: {
		"Great choice! This food is naturally low in sugar.",
		"You can enjoy this as part of a balanced diet.",
		"Consider pairing with protein for sustained energy.",
	},
	domain.TierModerate: {
		"Moderate sugar content - enjoy in reasonable portions.",
		"Consider the timing of consumption (e.g., before exercise).",
		"Balance with low-sugar foods throughout the day.",
	},
	domain.TierHigh: {
		"High sugar content - consider limiting portion size.",
		"Try to consume with fiber-rich foods to slow absorption.",
		"Consider this as an occasional treat rather than daily food.",
	},
	domain.TierVeryHigh: {
		"Very high sugar content - keep portions small and infrequent.",
		"Look for lower-sugar alternatives when possible.",
		"Pair with fiber or protein to blunt the blood sugar spike.",
	},
}

// PortionScale returns the amount of a per-100g nutrient contained in the
// given portion.
func PortionScale(per100g, portionG float64) float64 {
	return per100g / 100 * portionG
}
