package domain

import "errors"

var (
	// ErrInvalidInput is returned when user input fails validation before
	// reaching a data client or the database.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFoodNotFound is returned when neither source has a match for a
	// query or barcode. Distinct from a source being unreachable.
	ErrFoodNotFound = errors.New("food not found")

	// ErrSourceUnavailable is returned when an outbound nutrition API call
	// times out, fails, or returns a malformed response.
	ErrSourceUnavailable = errors.New("nutrition source unavailable")

	// ErrNotFound is returned when a persisted row (entry, favorite, user)
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)
