package postgres

import (
	"context"
	"errors"

	"github.com/sugarcheck/backend/internal/domain"
	"gorm.io/gorm"
)

// FavoriteRepository persists favorite foods with GORM.
type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, fav *domain.FavoriteFood) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *FavoriteRepository) FindByUserAndName(ctx context.Context, userID uint, name string) (*domain.FavoriteFood, error) {
	var fav domain.FavoriteFood
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND food_name = ?", userID, name).
		First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]domain.FavoriteFood, error) {
	var favs []domain.FavoriteFood
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.FavoriteFood{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *FavoriteRepository) Clear(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.FavoriteFood{}).Error
}
