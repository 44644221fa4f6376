package usda

import (
	"strconv"
	"strings"

	"github.com/sugarcheck/backend/internal/domain"
)

// USDA nutrient IDs for the values this app reports.
const (
	nutrientIDSugar        = 2000 // Total Sugars (g)
	nutrientIDEnergy       = 1008 // Energy (kcal)
	nutrientIDCarbohydrate = 1005 // Carbohydrate, by difference (g)
	nutrientIDProtein      = 1003 // Protein (g)
	nutrientIDTotalFat     = 1004 // Total lipid (fat) (g)
	nutrientIDFiber        = 1079 // Fiber, total dietary (g)
	nutrientIDSodium       = 1093 // Sodium (mg)
)

// searchResponse is the shape of /v1/foods/search.
type searchResponse struct {
	Foods       []searchFood `json:"foods"`
	TotalHits   int          `json:"totalHits"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
}

type searchFood struct {
	FdcID                  int64          `json:"fdcId"`
	Description            string         `json:"description"`
	AdditionalDescriptions string         `json:"additionalDescriptions"`
	DataType               string         `json:"dataType"`
	Nutrients              []foodNutrient `json:"foodNutrients"`
}

type foodNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}

// mapFood converts a USDA search result to the normalized food model.
func mapFood(food searchFood) domain.FoodItem {
	return domain.FoodItem{
		ExternalID:  strconv.FormatInt(food.FdcID, 10),
		Name:        food.Description,
		Description: food.AdditionalDescriptions,
		DataType:    food.DataType,
		Source:      domain.SourceUSDA,
		Nutrients:   extractNutrients(food.Nutrients),
	}
}

// extractNutrients pulls the reported nutrients out of the USDA list.
// Matching is by nutrient ID with a name-based fallback, since older data
// types occasionally ship IDs this code does not know. Missing nutrients
// stay zero.
func extractNutrients(nutrients []foodNutrient) domain.Nutrients {
	out := domain.Nutrients{}

	for _, n := range nutrients {
		switch n.NutrientID {
		case nutrientIDSugar:
			out.SugarG = n.Value
		case nutrientIDEnergy:
			out.Calories = n.Value
		case nutrientIDCarbohydrate:
			out.CarbsG = n.Value
		case nutrientIDProtein:
			out.ProteinG = n.Value
		case nutrientIDTotalFat:
			out.FatG = n.Value
		case nutrientIDFiber:
			out.FiberG = n.Value
		case nutrientIDSodium:
			out.SodiumMg = n.Value
		default:
			applyByName(&out, n)
		}
	}

	return out
}

// applyByName fills a nutrient slot from its name when the ID was unknown.
// Only sets values that are still zero so ID matches always win.
func applyByName(out *domain.Nutrients, n foodNutrient) {
	name := strings.ToLower(n.NutrientName)
	switch {
	case strings.Contains(name, "sugar") && strings.Contains(name, "total"):
		if out.SugarG == 0 {
			out.SugarG = n.Value
		}
	case strings.Contains(name, "energy") || strings.Contains(name, "calorie"):
		if out.Calories == 0 {
			out.Calories = n.Value
		}
	case strings.Contains(name, "carbohydrate"):
		if out.CarbsG == 0 {
			out.CarbsG = n.Value
		}
	case strings.Contains(name, "protein"):
		if out.ProteinG == 0 {
			out.ProteinG = n.Value
		}
	case strings.Contains(name, "fat") || strings.Contains(name, "lipid"):
		if out.FatG == 0 {
			out.FatG = n.Value
		}
	case strings.Contains(name, "fiber"):
		if out.FiberG == 0 {
			out.FiberG = n.Value
		}
	case strings.Contains(name, "sodium"):
		if out.SodiumMg == 0 {
			out.SodiumMg = n.Value
		}
	}
}
