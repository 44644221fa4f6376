package postgres

import (
	"context"
	"errors"

	"github.com/sugarcheck/backend/internal/domain"
	"gorm.io/gorm"
)

// TrackingRepository persists daily tracking entries with GORM.
type TrackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

func (r *TrackingRepository) Insert(ctx context.Context, entry *domain.TrackingEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TrackingRepository) ListByUserAndDate(ctx context.Context, userID uint, date string) ([]domain.TrackingEntry, error) {
	var entries []domain.TrackingEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("consumed_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *TrackingRepository) ListByUserAndRange(ctx context.Context, userID uint, from, to string) ([]domain.TrackingEntry, error) {
	var entries []domain.TrackingEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC, consumed_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes an entry by id and returns the removed row.
func (r *TrackingRepository) Delete(ctx context.Context, id uint) (*domain.TrackingEntry, error) {
	var entry domain.TrackingEntry
	err := r.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *TrackingRepository) ClearDay(ctx context.Context, userID uint, date string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&domain.TrackingEntry{}).Error
}
