package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sugarcheck/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// LookupServiceConfig holds configuration for the lookup service.
type LookupServiceConfig struct {
	CacheTTL   time.Duration
	MaxResults int
}

// LookupService answers food lookups: name search via USDA, barcode lookups
// via OpenFoodFacts, both behind a cache. Every returned item carries its
// sugar analysis.
type LookupService struct {
	cache      domain.CacheRepository
	searcher   domain.FoodSearcher
	barcodes   domain.BarcodeLookup
	bands      HealthBands
	cacheTTL   time.Duration
	maxResults int
	log        *logrus.Logger
}

// NewLookupService creates a lookup service with dependencies.
func NewLookupService(
	cache domain.CacheRepository,
	searcher domain.FoodSearcher,
	barcodes domain.BarcodeLookup,
	bands HealthBands,
	config LookupServiceConfig,
	log *logrus.Logger,
) *LookupService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // 30 days
	}
	maxResults := config.MaxResults
	if maxResults == 0 {
		maxResults = 10
	}
	if !bands.Valid() {
		bands = DefaultHealthBands()
	}
	if log == nil {
		log = logrus.New()
	}

	return &LookupService{
		cache:      cache,
		searcher:   searcher,
		barcodes:   barcodes,
		bands:      bands,
		cacheTTL:   cacheTTL,
		maxResults: maxResults,
		log:        log,
	}
}

// SearchByName looks up foods matching the query.
// Flow: validate -> check cache -> search USDA -> annotate -> cache -> return.
func (s *LookupService) SearchByName(ctx context.Context, query string) ([]domain.FoodItem, error) {
	trimmed, err := ValidateSearchQuery(query)
	if err != nil {
		return nil, err
	}

	cacheKey := "food:" + normalizeForCacheKey(trimmed)
	if items, ok := s.getCachedItems(ctx, cacheKey); ok {
		s.log.WithFields(logrus.Fields{"query": trimmed, "results": len(items)}).Debug("search cache hit")
		return items, nil
	}

	items, err := s.searcher.SearchFoods(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if len(items) > s.maxResults {
		items = items[:s.maxResults]
	}
	s.annotate(items)

	if err := s.cache.Set(ctx, cacheKey, items, s.cacheTTL); err != nil {
		// A cold cache is not a failed lookup.
		s.log.WithError(err).Warn("failed to cache search results")
	}

	s.log.WithFields(logrus.Fields{"query": trimmed, "results": len(items)}).Info("food search")
	return items, nil
}

// LookupBarcode resolves a barcode to a single food, or ErrFoodNotFound.
func (s *LookupService) LookupBarcode(ctx context.Context, code string) (*domain.FoodItem, error) {
	clean, err := ValidateBarcode(code)
	if err != nil {
		return nil, err
	}

	cacheKey := "barcode:" + clean
	if items, ok := s.getCachedItems(ctx, cacheKey); ok && len(items) == 1 {
		s.log.WithField("barcode", clean).Debug("barcode cache hit")
		item := items[0]
		return &item, nil
	}

	item, err := s.barcodes.LookupBarcode(ctx, clean)
	if err != nil {
		return nil, err
	}
	if analysis, aerr := s.bands.Analyze(item.Nutrients.SugarG); aerr == nil {
		item.Analysis = analysis
	}

	if err := s.cache.Set(ctx, cacheKey, []domain.FoodItem{*item}, s.cacheTTL); err != nil {
		s.log.WithError(err).Warn("failed to cache barcode result")
	}

	s.log.WithFields(logrus.Fields{"barcode": clean, "name": item.Name}).Info("barcode lookup")
	return item, nil
}

// Analyze exposes the converter for the calculator endpoint.
func (s *LookupService) Analyze(grams float64) (*domain.SugarAnalysis, error) {
	return s.bands.Analyze(grams)
}

// annotate attaches a sugar analysis to each item in place.
func (s *LookupService) annotate(items []domain.FoodItem) {
	for i := range items {
		analysis, err := s.bands.Analyze(items[i].Nutrients.SugarG)
		if err != nil {
			continue
		}
		items[i].Analysis = analysis
	}
}

// getCachedItems retrieves previously cached lookup results.
func (s *LookupService) getCachedItems(ctx context.Context, key string) ([]domain.FoodItem, bool) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	items, ok := value.([]domain.FoodItem)
	if !ok || len(items) == 0 {
		return nil, false
	}
	return items, true
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
