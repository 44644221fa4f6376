package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sugarcheck/backend/internal/domain"
)

const dateLayout = "2006-01-02"

// TrackRequest describes one consumed portion of a food.
type TrackRequest struct {
	UserID   uint
	Food     domain.FoodItem
	PortionG float64
	Date     string // YYYY-MM-DD, defaults to today
}

// DailySummary is a user's tracked intake for one date with its totals.
type DailySummary struct {
	Date          string                 `json:"date"`
	Entries       []domain.TrackingEntry `json:"entries"`
	TotalSugarG   float64                `json:"totalSugarG"`
	TotalCalories float64                `json:"totalCalories"`
	Teaspoons     float64                `json:"teaspoons"`
	LimitG        float64                `json:"limitG"`
	LimitPct      float64                `json:"limitPct"`
	Exceeded      bool                   `json:"exceeded"`
}

// TrendReport aggregates recent daily insights for the charts.
type TrendReport struct {
	Days          int                   `json:"days"`
	Insights      []domain.DailyInsight `json:"insights"`
	AverageSugarG float64               `json:"averageSugarG"`
	MaxSugarG     float64               `json:"maxSugarG"`
	DaysOverLimit int                   `json:"daysOverLimit"`
	CompliancePct float64               `json:"compliancePct"`
}

// TrackerService owns daily tracking, favorites and insights. Every write
// that touches a day's entries regenerates that day's insight so the cached
// aggregate always equals the sum of the entries.
type TrackerService struct {
	foods         domain.FoodRepository
	entries       domain.TrackingRepository
	favorites     domain.FavoriteRepository
	insights      domain.InsightRepository
	users         domain.UserRepository
	defaultLimitG float64
	log           *logrus.Logger
}

// NewTrackerService creates a tracker service with dependencies.
func NewTrackerService(
	foods domain.FoodRepository,
	entries domain.TrackingRepository,
	favorites domain.FavoriteRepository,
	insights domain.InsightRepository,
	users domain.UserRepository,
	defaultLimitG float64,
	log *logrus.Logger,
) *TrackerService {
	if defaultLimitG <= 0 {
		defaultLimitG = WHODailyLimitG
	}
	if log == nil {
		log = logrus.New()
	}
	return &TrackerService{
		foods:         foods,
		entries:       entries,
		favorites:     favorites,
		insights:      insights,
		users:         users,
		defaultLimitG: defaultLimitG,
		log:           log,
	}
}

// TrackFood records a consumed portion and refreshes the day's insight.
// Sugar and calories are scaled from per-100g values to the portion.
func (s *TrackerService) TrackFood(ctx context.Context, req TrackRequest) (*domain.TrackingEntry, error) {
	if req.Food.Name == "" {
		return nil, fmt.Errorf("%w: food name is required", domain.ErrInvalidInput)
	}
	if err := ValidatePortion(req.PortionG); err != nil {
		return nil, err
	}
	date, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}
	userID := defaultUserID(req.UserID)

	record, err := s.foods.SaveOrGet(ctx, foodRecordFrom(req.Food))
	if err != nil {
		return nil, fmt.Errorf("saving food item: %w", err)
	}

	entry := &domain.TrackingEntry{
		UserID:       userID,
		FoodRecordID: record.ID,
		FoodName:     record.Name,
		PortionG:     req.PortionG,
		SugarG:       PortionScale(req.Food.Nutrients.SugarG, req.PortionG),
		Calories:     PortionScale(req.Food.Nutrients.Calories, req.PortionG),
		ConsumedAt:   time.Now(),
		Date:         date,
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("inserting tracking entry: %w", err)
	}

	if err := s.refreshInsight(ctx, userID, date); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"userId": userID,
		"food":   record.Name,
		"sugarG": entry.SugarG,
		"date":   date,
	}).Info("tracked food")
	return entry, nil
}

// RemoveEntry deletes a tracking entry and refreshes its day's insight.
func (s *TrackerService) RemoveEntry(ctx context.Context, id uint) error {
	entry, err := s.entries.Delete(ctx, id)
	if err != nil {
		return err
	}
	return s.refreshInsight(ctx, entry.UserID, entry.Date)
}

// ClearDay removes all entries for a user and date, along with the insight.
func (s *TrackerService) ClearDay(ctx context.Context, userID uint, date string) error {
	date, err := resolveDate(date)
	if err != nil {
		return err
	}
	userID = defaultUserID(userID)
	if err := s.entries.ClearDay(ctx, userID, date); err != nil {
		return fmt.Errorf("clearing day: %w", err)
	}
	return s.refreshInsight(ctx, userID, date)
}

// DailySummary returns a day's entries with totals against the user's limit.
func (s *TrackerService) DailySummary(ctx context.Context, userID uint, date string) (*DailySummary, error) {
	date, err := resolveDate(date)
	if err != nil {
		return nil, err
	}
	userID = defaultUserID(userID)

	entries, err := s.entries.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	var totalSugar, totalCalories float64
	for _, e := range entries {
		totalSugar += e.SugarG
		totalCalories += e.Calories
	}
	limit := s.dailyLimit(ctx, userID)

	return &DailySummary{
		Date:          date,
		Entries:       entries,
		TotalSugarG:   totalSugar,
		TotalCalories: totalCalories,
		Teaspoons:     SugarToTeaspoons(totalSugar),
		LimitG:        limit,
		LimitPct:      DailyLimitPercent(totalSugar, limit),
		Exceeded:      totalSugar > limit,
	}, nil
}

// EntriesRange returns a user's entries between two dates inclusive, for
// exports and custom chart windows.
func (s *TrackerService) EntriesRange(ctx context.Context, userID uint, from, to string) ([]domain.TrackingEntry, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to dates are required", domain.ErrInvalidInput)
	}
	from, err := resolveDate(from)
	if err != nil {
		return nil, err
	}
	to, err = resolveDate(to)
	if err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: from date must not be after to date", domain.ErrInvalidInput)
	}
	return s.entries.ListByUserAndRange(ctx, defaultUserID(userID), from, to)
}

// Trend returns the last N days of insights plus aggregate statistics.
func (s *TrackerService) Trend(ctx context.Context, userID uint, days int) (*TrendReport, error) {
	if days < 1 || days > 365 {
		return nil, fmt.Errorf("%w: days must be between 1 and 365", domain.ErrInvalidInput)
	}
	userID = defaultUserID(userID)

	insights, err := s.insights.ListRecent(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("listing insights: %w", err)
	}

	report := &TrendReport{Days: days, Insights: insights}
	if len(insights) == 0 {
		return report, nil
	}

	var total float64
	for _, in := range insights {
		total += in.TotalSugarG
		if in.TotalSugarG > report.MaxSugarG {
			report.MaxSugarG = in.TotalSugarG
		}
		if in.ExceededLimit {
			report.DaysOverLimit++
		}
	}
	report.AverageSugarG = total / float64(len(insights))
	report.CompliancePct = float64(len(insights)-report.DaysOverLimit) / float64(len(insights)) * 100
	return report, nil
}

// AddFavorite marks a food as favorite. Adding an existing favorite is a
// no-op that returns the existing row.
func (s *TrackerService) AddFavorite(ctx context.Context, userID uint, food domain.FoodItem) (*domain.FavoriteFood, error) {
	if food.Name == "" {
		return nil, fmt.Errorf("%w: food name is required", domain.ErrInvalidInput)
	}
	userID = defaultUserID(userID)

	existing, err := s.favorites.FindByUserAndName(ctx, userID, food.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking favorite: %w", err)
	}

	record, err := s.foods.SaveOrGet(ctx, foodRecordFrom(food))
	if err != nil {
		return nil, fmt.Errorf("saving food item: %w", err)
	}
	fav := &domain.FavoriteFood{
		UserID:       userID,
		FoodRecordID: record.ID,
		FoodName:     record.Name,
		SugarG:       record.SugarG,
		Calories:     record.Calories,
	}
	if err := s.favorites.Add(ctx, fav); err != nil {
		return nil, fmt.Errorf("adding favorite: %w", err)
	}
	return fav, nil
}

// ListFavorites returns a user's favorites, most recent first.
func (s *TrackerService) ListFavorites(ctx context.Context, userID uint) ([]domain.FavoriteFood, error) {
	return s.favorites.ListByUser(ctx, defaultUserID(userID))
}

// RemoveFavorite removes a favorite by id.
func (s *TrackerService) RemoveFavorite(ctx context.Context, id uint) error {
	return s.favorites.Remove(ctx, id)
}

// ClearFavorites removes all of a user's favorites.
func (s *TrackerService) ClearFavorites(ctx context.Context, userID uint) error {
	return s.favorites.Clear(ctx, defaultUserID(userID))
}

// SearchHistory searches previously tracked foods by name.
func (s *TrackerService) SearchHistory(ctx context.Context, query string, limit int) ([]domain.FoodRecord, error) {
	trimmed, err := ValidateSearchQuery(query)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.foods.SearchByName(ctx, trimmed, limit)
}

// GetUser returns a user by id.
func (s *TrackerService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.GetByID(ctx, defaultUserID(id))
}

// UpdateDailyLimit changes a user's daily sugar limit in grams.
func (s *TrackerService) UpdateDailyLimit(ctx context.Context, id uint, limitG float64) (*domain.User, error) {
	if limitG <= 0 || limitG > 200 {
		return nil, fmt.Errorf("%w: daily limit must be between 0 and 200 grams", domain.ErrInvalidInput)
	}
	return s.users.UpdateDailyLimit(ctx, defaultUserID(id), limitG)
}

// refreshInsight regenerates the cached aggregate for a user and date from
// the day's entries. An empty day removes the insight row.
func (s *TrackerService) refreshInsight(ctx context.Context, userID uint, date string) error {
	entries, err := s.entries.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return fmt.Errorf("listing entries for insight: %w", err)
	}

	if len(entries) == 0 {
		if err := s.insights.Delete(ctx, userID, date); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("deleting insight: %w", err)
		}
		return nil
	}

	var totalSugar, totalCalories float64
	for _, e := range entries {
		totalSugar += e.SugarG
		totalCalories += e.Calories
	}

	insight := &domain.DailyInsight{
		UserID:        userID,
		Date:          date,
		TotalSugarG:   totalSugar,
		TotalCalories: totalCalories,
		FoodCount:     len(entries),
		ExceededLimit: totalSugar > s.dailyLimit(ctx, userID),
	}
	if err := s.insights.Upsert(ctx, insight); err != nil {
		return fmt.Errorf("upserting insight: %w", err)
	}
	return nil
}

// dailyLimit returns the user's configured limit, falling back to the
// service default when the user is missing or has no limit set.
func (s *TrackerService) dailyLimit(ctx context.Context, userID uint) float64 {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user.DailySugarLimitG <= 0 {
		return s.defaultLimitG
	}
	return user.DailySugarLimitG
}

func foodRecordFrom(food domain.FoodItem) *domain.FoodRecord {
	return &domain.FoodRecord{
		Name:        food.Name,
		Description: food.Description,
		SugarG:      food.Nutrients.SugarG,
		Calories:    food.Nutrients.Calories,
		CarbsG:      food.Nutrients.CarbsG,
		ProteinG:    food.Nutrients.ProteinG,
		FatG:        food.Nutrients.FatG,
		FiberG:      food.Nutrients.FiberG,
		SodiumMg:    food.Nutrients.SodiumMg,
		DataSource:  food.Source,
		ExternalID:  food.ExternalID,
	}
}

func resolveDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", fmt.Errorf("%w: date must be in YYYY-MM-DD format", domain.ErrInvalidInput)
	}
	return date, nil
}

// The original dashboard is single-user; requests without a user fall back
// to the seeded default account.
func defaultUserID(id uint) uint {
	if id == 0 {
		return 1
	}
	return id
}
