package openfoodfacts

import (
	"strings"

	"github.com/sugarcheck/backend/internal/domain"
)

// productResponse is the shape of /api/v0/product/{code}.json.
type productResponse struct {
	Status  int     `json:"status"` // 1 = found, 0 = unknown product
	Product product `json:"product"`
}

type product struct {
	Code        string     `json:"code"`
	ProductName string     `json:"product_name"`
	Brands      string     `json:"brands"`
	Categories  string     `json:"categories"`
	Nutriments  nutriments `json:"nutriments"`
}

// nutriments holds the per-100g values. OpenFoodFacts omits keys that were
// never entered for a product, which leaves the fields at zero.
type nutriments struct {
	Sugars100g        float64 `json:"sugars_100g"`
	EnergyKcal100g    float64 `json:"energy-kcal_100g"`
	Carbohydrates100g float64 `json:"carbohydrates_100g"`
	Proteins100g      float64 `json:"proteins_100g"`
	Fat100g           float64 `json:"fat_100g"`
	Fiber100g         float64 `json:"fiber_100g"`
	Sodium100g        float64 `json:"sodium_100g"` // grams; converted to mg
}

// mapProduct converts an OpenFoodFacts product to the normalized food model.
func mapProduct(code string, p product) domain.FoodItem {
	name := p.ProductName
	if name == "" {
		name = "Unknown Product"
	}

	externalID := p.Code
	if externalID == "" {
		externalID = code
	}

	return domain.FoodItem{
		ExternalID:  externalID,
		Name:        name,
		Description: describeProduct(p),
		Source:      domain.SourceOpenFoodFacts,
		Nutrients: domain.Nutrients{
			SugarG:   p.Nutriments.Sugars100g,
			Calories: p.Nutriments.EnergyKcal100g,
			CarbsG:   p.Nutriments.Carbohydrates100g,
			ProteinG: p.Nutriments.Proteins100g,
			FatG:     p.Nutriments.Fat100g,
			FiberG:   p.Nutriments.Fiber100g,
			SodiumMg: p.Nutriments.Sodium100g * 1000,
		},
	}
}

// describeProduct builds "Brand - First Category" from whatever is present.
func describeProduct(p product) string {
	if p.Brands == "" {
		return ""
	}
	category := p.Categories
	if idx := strings.Index(category, ","); idx >= 0 {
		category = category[:idx]
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return p.Brands
	}
	return p.Brands + " - " + category
}
