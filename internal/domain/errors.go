package domain

import "errors"

var (
	// ErrNoConfidentMatch is returned when gating and scoring leave no candidate
	// above the minimum confidence threshold
	ErrNoConfidentMatch = errors.New("no confident match found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRecognitionFailed is returned when all recognition tiers have failed
	ErrRecognitionFailed = errors.New("product recognition failed")

	// ErrMalformedAnalysis is returned when the recognition oracle returns a
	// body that cannot be decoded into a RawAnalysis
	ErrMalformedAnalysis = errors.New("malformed recognition response")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrSearchFailure is returned when the product search index request fails
	ErrSearchFailure = errors.New("product search request failed")
)
