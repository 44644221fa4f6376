package domain

import (
	"time"

	"gorm.io/gorm"
)

// User owns tracking entries, favorites and insights. The app seeds a
// default user (ID 1) so the dashboard works without sign-up.
type User struct {
	gorm.Model
	Username         string  `gorm:"uniqueIndex;not null" json:"username"`
	Email            string  `gorm:"uniqueIndex" json:"email"`
	DailySugarLimitG float64 `gorm:"default:25" json:"dailySugarLimitG"` // WHO recommendation
}

// FoodRecord is a persisted copy of a looked-up food, deduplicated on
// name + external id so repeated tracking reuses the same row.
type FoodRecord struct {
	gorm.Model
	Name        string  `gorm:"index;not null" json:"name"`
	Description string  `json:"description,omitempty"`
	SugarG      float64 `json:"sugarG"`
	Calories    float64 `json:"calories"`
	CarbsG      float64 `json:"carbsG"`
	ProteinG    float64 `json:"proteinG"`
	FatG        float64 `json:"fatG"`
	FiberG      float64 `json:"fiberG"`
	SodiumMg    float64 `json:"sodiumMg"`
	DataSource  string  `json:"dataSource"` // "USDA" or "OpenFoodFacts"
	ExternalID  string  `gorm:"index" json:"externalId"`
}

// TableName keeps the table name the dashboard schema has always used.
func (FoodRecord) TableName() string { return "food_items" }

// TrackingEntry records one consumed portion of a food on a given date.
// Entries are immutable after creation; the only mutation is deletion.
type TrackingEntry struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null" json:"userId"`
	FoodRecordID uint      `json:"foodRecordId"`
	FoodName     string    `json:"foodName"`
	PortionG     float64   `json:"portionG"`
	SugarG       float64   `json:"sugarG"`   // sugar in this portion, not per 100g
	Calories     float64   `json:"calories"` // calories in this portion
	ConsumedAt   time.Time `json:"consumedAt"`
	Date         string    `gorm:"index;size:10" json:"date"` // YYYY-MM-DD
}

// FavoriteFood marks a food a user wants quick access to.
type FavoriteFood struct {
	gorm.Model
	UserID       uint    `gorm:"index;not null" json:"userId"`
	FoodRecordID uint    `json:"foodRecordId"`
	FoodName     string  `json:"foodName"`
	SugarG       float64 `json:"sugarG"` // per 100g
	Calories     float64 `json:"calories"`
}

// DailyInsight caches the per-day aggregate of a user's tracking entries.
// It is regenerated whenever the day's entries change and must always equal
// the sum of those entries; the entries remain the source of truth.
type DailyInsight struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex:idx_insight_user_date" json:"userId"`
	Date          string  `gorm:"uniqueIndex:idx_insight_user_date;size:10" json:"date"`
	TotalSugarG   float64 `json:"totalSugarG"`
	TotalCalories float64 `json:"totalCalories"`
	FoodCount     int     `json:"foodCount"`
	ExceededLimit bool    `json:"exceededLimit"`
}
