package domain

// Data sources a FoodItem can originate from.
const (
	SourceUSDA          = "USDA"
	SourceOpenFoodFacts = "OpenFoodFacts"
)

// FoodItem is the normalized representation of a food returned by either
// nutrition source. It is recreated per lookup and never mutated afterwards.
type FoodItem struct {
	ExternalID  string         `json:"externalId"` // FDC ID or barcode
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	DataType    string         `json:"dataType,omitempty"` // e.g. "Foundation", "Branded"
	Source      string         `json:"source"`             // "USDA" or "OpenFoodFacts"
	Nutrients   Nutrients      `json:"nutrients"`
	Analysis    *SugarAnalysis `json:"analysis,omitempty"`
}

// Nutrients holds nutrition values per 100g of food. Upstream schemas vary
// by item, so any of these may be zero when the source omits them.
type Nutrients struct {
	Calories float64 `json:"calories"` // kcal
	SugarG   float64 `json:"sugarG"`
	CarbsG   float64 `json:"carbsG"`
	ProteinG float64 `json:"proteinG"`
	FatG     float64 `json:"fatG"`
	FiberG   float64 `json:"fiberG"`
	SodiumMg float64 `json:"sodiumMg"`
}
