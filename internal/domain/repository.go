package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching lookup results.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// FoodSearcher looks foods up by name and returns normalized candidates in
// source order. Implemented by the USDA FoodData Central client.
type FoodSearcher interface {
	SearchFoods(ctx context.Context, query string) ([]FoodItem, error)
}

// BarcodeLookup resolves a barcode to a single normalized food.
// Implemented by the OpenFoodFacts client.
type BarcodeLookup interface {
	LookupBarcode(ctx context.Context, code string) (*FoodItem, error)
}

// FoodRepository persists looked-up foods for tracking and history search.
type FoodRepository interface {
	// SaveOrGet stores the record unless a row with the same name and
	// external id already exists, in which case that row is returned.
	SaveOrGet(ctx context.Context, rec *FoodRecord) (*FoodRecord, error)
	SearchByName(ctx context.Context, query string, limit int) ([]FoodRecord, error)
}

// TrackingRepository persists daily tracking entries.
type TrackingRepository interface {
	Insert(ctx context.Context, entry *TrackingEntry) error
	ListByUserAndDate(ctx context.Context, userID uint, date string) ([]TrackingEntry, error)
	ListByUserAndRange(ctx context.Context, userID uint, from, to string) ([]TrackingEntry, error)
	// Delete removes an entry and returns it so callers can refresh the
	// insight for its date.
	Delete(ctx context.Context, id uint) (*TrackingEntry, error)
	ClearDay(ctx context.Context, userID uint, date string) error
}

// FavoriteRepository persists a user's favorite foods.
type FavoriteRepository interface {
	Add(ctx context.Context, fav *FavoriteFood) error
	FindByUserAndName(ctx context.Context, userID uint, name string) (*FavoriteFood, error)
	ListByUser(ctx context.Context, userID uint) ([]FavoriteFood, error)
	Remove(ctx context.Context, id uint) error
	Clear(ctx context.Context, userID uint) error
}

// InsightRepository persists the per-day aggregate cache.
type InsightRepository interface {
	Upsert(ctx context.Context, insight *DailyInsight) error
	Delete(ctx context.Context, userID uint, date string) error
	ListRecent(ctx context.Context, userID uint, days int) ([]DailyInsight, error)
}

// UserRepository persists users and their daily sugar limits.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*User, error)
	// EnsureDefault creates the default user (ID 1) if missing.
	EnsureDefault(ctx context.Context) (*User, error)
	UpdateDailyLimit(ctx context.Context, id uint, limitG float64) (*User, error)
}
