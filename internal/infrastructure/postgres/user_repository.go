package postgres

import (
	"context"
	"errors"

	"github.com/sugarcheck/backend/internal/domain"
	"gorm.io/gorm"
)

const defaultUserID = 1

// UserRepository persists users with GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureDefault creates the default single-dashboard user if missing.
func (r *UserRepository) EnsureDefault(ctx context.Context) (*domain.User, error) {
	user, err := r.GetByID(ctx, defaultUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created := &domain.User{
		Model:            gorm.Model{ID: defaultUserID},
		Username:         "default",
		Email:            "default@sugarcheck.local",
		DailySugarLimitG: 25,
	}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *UserRepository) UpdateDailyLimit(ctx context.Context, id uint, limitG float64) (*domain.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(user).
		Update("daily_sugar_limit_g", limitG).Error; err != nil {
		return nil, err
	}
	user.DailySugarLimitG = limitG
	return user, nil
}
