package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sugarcheck/backend/internal/domain"
	"github.com/sugarcheck/backend/internal/usecase"
)

// FoodLookup is the lookup surface the handlers need.
type FoodLookup interface {
	SearchByName(ctx context.Context, query string) ([]domain.FoodItem, error)
	LookupBarcode(ctx context.Context, code string) (*domain.FoodItem, error)
	Analyze(grams float64) (*domain.SugarAnalysis, error)
}

// Tracker is the tracking surface the handlers need.
type Tracker interface {
	TrackFood(ctx context.Context, req usecase.TrackRequest) (*domain.TrackingEntry, error)
	RemoveEntry(ctx context.Context, id uint) error
	ClearDay(ctx context.Context, userID uint, date string) error
	DailySummary(ctx context.Context, userID uint, date string) (*usecase.DailySummary, error)
	EntriesRange(ctx context.Context, userID uint, from, to string) ([]domain.TrackingEntry, error)
	Trend(ctx context.Context, userID uint, days int) (*usecase.TrendReport, error)
	AddFavorite(ctx context.Context, userID uint, food domain.FoodItem) (*domain.FavoriteFood, error)
	ListFavorites(ctx context.Context, userID uint) ([]domain.FavoriteFood, error)
	RemoveFavorite(ctx context.Context, id uint) error
	ClearFavorites(ctx context.Context, userID uint) error
	SearchHistory(ctx context.Context, query string, limit int) ([]domain.FoodRecord, error)
	GetUser(ctx context.Context, id uint) (*domain.User, error)
	UpdateDailyLimit(ctx context.Context, id uint, limitG float64) (*domain.User, error)
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	lookup  FoodLookup
	tracker Tracker
}

// NewHandler creates a new HTTP handler.
func NewHandler(lookup FoodLookup, tracker Tracker) *Handler {
	return &Handler{lookup: lookup, tracker: tracker}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "sugarcheck-backend",
		"version": "1.0.0",
	})
}

// SearchFoods handles name searches: GET /api/v1/foods/search?query=apple
func (h *Handler) SearchFoods(c *gin.Context) {
	results, err := h.lookup.SearchByName(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// LookupBarcode handles barcode lookups: GET /api/v1/foods/barcode/:code
func (h *Handler) LookupBarcode(c *gin.Context) {
	item, err := h.lookup.LookupBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type convertRequest struct {
	Grams *float64 `json:"grams" binding:"required"`
}

// ConvertSugar handles the calculator: POST /api/v1/sugar/convert {grams}
func (h *Handler) ConvertSugar(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grams is required and must be a number"})
		return
	}
	analysis, err := h.lookup.Analyze(*req.Grams)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

type nutrientsPayload struct {
	Calories float64 `json:"calories" binding:"gte=0"`
	SugarG   float64 `json:"sugarG" binding:"gte=0"`
	CarbsG   float64 `json:"carbsG" binding:"gte=0"`
	ProteinG float64 `json:"proteinG" binding:"gte=0"`
	FatG     float64 `json:"fatG" binding:"gte=0"`
	FiberG   float64 `json:"fiberG" binding:"gte=0"`
	SodiumMg float64 `json:"sodiumMg" binding:"gte=0"`
}

type foodPayload struct {
	ExternalID  string           `json:"externalId"`
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Source      string           `json:"source"`
	Nutrients   nutrientsPayload `json:"nutrients"`
}

func (p foodPayload) toDomain() domain.FoodItem {
	return domain.FoodItem{
		ExternalID:  p.ExternalID,
		Name:        p.Name,
		Description: p.Description,
		Source:      p.Source,
		Nutrients: domain.Nutrients{
			Calories: p.Nutrients.Calories,
			SugarG:   p.Nutrients.SugarG,
			CarbsG:   p.Nutrients.CarbsG,
			ProteinG: p.Nutrients.ProteinG,
			FatG:     p.Nutrients.FatG,
			FiberG:   p.Nutrients.FiberG,
			SodiumMg: p.Nutrients.SodiumMg,
		},
	}
}

type trackEntryRequest struct {
	UserID   uint        `json:"userId"`
	Food     foodPayload `json:"food" binding:"required"`
	PortionG float64     `json:"portionG" binding:"required,gt=0,lte=1000"`
	Date     string      `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// TrackEntry records a consumed portion: POST /api/v1/tracker/entries
func (h *Handler) TrackEntry(c *gin.Context) {
	var req trackEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tracking request: " + err.Error()})
		return
	}

	entry, err := h.tracker.TrackFood(c.Request.Context(), usecase.TrackRequest{
		UserID:   req.UserID,
		Food:     req.Food.toDomain(),
		PortionG: req.PortionG,
		Date:     req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetDailySummary returns a day's entries and totals:
// GET /api/v1/tracker/entries?date=2025-01-15&user_id=1
func (h *Handler) GetDailySummary(c *gin.Context) {
	summary, err := h.tracker.DailySummary(c.Request.Context(), queryUserID(c), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetEntriesRange returns entries between two dates:
// GET /api/v1/tracker/entries/range?from=2025-01-01&to=2025-01-07
func (h *Handler) GetEntriesRange(c *gin.Context) {
	entries, err := h.tracker.EntriesRange(c.Request.Context(), queryUserID(c), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// DeleteEntry removes one entry: DELETE /api/v1/tracker/entries/:id
func (h *Handler) DeleteEntry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.tracker.RemoveEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearDay removes all entries for a date: DELETE /api/v1/tracker/entries?date=
func (h *Handler) ClearDay(c *gin.Context) {
	if err := h.tracker.ClearDay(c.Request.Context(), queryUserID(c), c.Query("date")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type favoriteRequest struct {
	UserID uint        `json:"userId"`
	Food   foodPayload `json:"food" binding:"required"`
}

// AddFavorite saves a favorite: POST /api/v1/favorites
func (h *Handler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid favorite request: " + err.Error()})
		return
	}
	fav, err := h.tracker.AddFavorite(c.Request.Context(), req.UserID, req.Food.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

// ListFavorites lists favorites: GET /api/v1/favorites?user_id=1
func (h *Handler) ListFavorites(c *gin.Context) {
	favs, err := h.tracker.ListFavorites(c.Request.Context(), queryUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"favorites": favs,
		"count":     len(favs),
	})
}

// RemoveFavorite removes one favorite: DELETE /api/v1/favorites/:id
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.tracker.RemoveFavorite(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearFavorites removes all favorites: DELETE /api/v1/favorites
func (h *Handler) ClearFavorites(c *gin.Context) {
	if err := h.tracker.ClearFavorites(c.Request.Context(), queryUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTrend returns recent insights: GET /api/v1/insights/trend?days=7
func (h *Handler) GetTrend(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a number"})
		return
	}
	report, err := h.tracker.Trend(c.Request.Context(), queryUserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// SearchHistory searches previously tracked foods:
// GET /api/v1/foods/history?query=apple&limit=10
func (h *Handler) SearchHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	foods, err := h.tracker.SearchHistory(c.Request.Context(), c.Query("query"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": foods,
		"count":   len(foods),
	})
}

// GetUser returns a user: GET /api/v1/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := h.tracker.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type limitRequest struct {
	DailySugarLimitG float64 `json:"dailySugarLimitG" binding:"required,gt=0"`
}

// UpdateDailyLimit changes a user's limit: PATCH /api/v1/users/:id/limit
func (h *Handler) UpdateDailyLimit(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req limitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dailySugarLimitG is required and must be positive"})
		return
	}
	user, err := h.tracker.UpdateDailyLimit(c.Request.Context(), id, req.DailySugarLimitG)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// respondError maps domain errors onto HTTP statuses. Unknown errors are
// reported as a generic persistence/internal failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFoodNotFound), errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSourceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "nutrition database unavailable, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// paramID parses the :id path parameter, writing a 400 when it is not a
// positive integer.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// queryUserID reads the optional user_id query parameter; zero means the
// default user.
func queryUserID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
