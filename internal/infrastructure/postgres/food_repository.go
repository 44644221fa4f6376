package postgres

import (
	"context"
	"errors"

	"github.com/sugarcheck/backend/internal/domain"
	"gorm.io/gorm"
)

// FoodRepository persists looked-up foods with GORM.
type FoodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

// SaveOrGet returns the existing row for the same name + external id, or
// inserts the record.
func (r *FoodRepository) SaveOrGet(ctx context.Context, rec *domain.FoodRecord) (*domain.FoodRecord, error) {
	var existing domain.FoodRecord
	err := r.db.WithContext(ctx).
		Where("name = ? AND external_id = ?", rec.Name, rec.ExternalID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// SearchByName matches tracked foods case-insensitively by substring.
func (r *FoodRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.FoodRecord, error) {
	var foods []domain.FoodRecord
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}
