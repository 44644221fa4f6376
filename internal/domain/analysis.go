package domain

// HealthTier is the discrete warning category derived from sugar content.
type HealthTier string

const (
	TierLow      HealthTier = "LOW SUGAR"
	TierModerate HealthTier = "MODERATE SUGAR"
	TierHigh     HealthTier = "HIGH SUGAR"
	TierVeryHigh HealthTier = "VERY HIGH SUGAR"
)

// SugarAnalysis is the teaspoon translation of a sugar quantity plus the
// health warning derived from it.
type SugarAnalysis struct {
	SugarG       float64    `json:"sugarG"`
	Teaspoons    float64    `json:"teaspoons"`
	Tier         HealthTier `json:"tier"`
	Color        string     `json:"color"` // display color for the tier
	Message      string     `json:"message"`
	Tips         []string   `json:"tips,omitempty"`
	WHODailyPct  float64    `json:"whoDailyPct"`  // % of the WHO 25g/day limit
	AHAMalePct   float64    `json:"ahaMalePct"`   // % of the AHA 36g/day limit for men
	AHAFemalePct float64    `json:"ahaFemalePct"` // % of the AHA 25g/day limit for women
	ImpactScore  int        `json:"impactScore"`  // 1 (low) .. 4 (very high)
}
