package postgres

import (
	"context"
	"errors"

	"github.com/sugarcheck/backend/internal/domain"
	"gorm.io/gorm"
)

// InsightRepository persists the per-day aggregate cache with GORM.
type InsightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

// Upsert writes the insight for its user and date, replacing the totals of
// an existing row so regeneration stays idempotent.
func (r *InsightRepository) Upsert(ctx context.Context, insight *domain.DailyInsight) error {
	var existing domain.DailyInsight
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", insight.UserID, insight.Date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(insight).Error
	}
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&existing).
		Updates(map[string]interface{}{
			"total_sugar_g":  insight.TotalSugarG,
			"total_calories": insight.TotalCalories,
			"food_count":     insight.FoodCount,
			"exceeded_limit": insight.ExceededLimit,
		}).Error
}

func (r *InsightRepository) Delete(ctx context.Context, userID uint, date string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&domain.DailyInsight{}).Error
}

// ListRecent returns up to the last N daily insights, newest first.
func (r *InsightRepository) ListRecent(ctx context.Context, userID uint, days int) ([]domain.DailyInsight, error) {
	var insights []domain.DailyInsight
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(days).
		Find(&insights).Error
	if err != nil {
		return nil, err
	}
	return insights, nil
}
