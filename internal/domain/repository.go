package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecognitionClient defines the interface for the external recognition
// oracle. AnalyzeText is the cheap path (OCR text in), AnalyzeImage the
// expensive one (image bytes in). Both block until the oracle responds and
// honor ctx cancellation.
type RecognitionClient interface {
	AnalyzeText(ctx context.Context, ocrText string) (*RawAnalysis, error)
	AnalyzeImage(ctx context.Context, image []byte) (*RawAnalysis, error)
}

// SearchQuery is a weighted multi-field query against the product index.
type SearchQuery struct {
	Text     string
	Category string // optional facet filter
	Limit    int
}

// SearchClient defines the interface for the external product search index.
type SearchClient interface {
	SearchProducts(ctx context.Context, query SearchQuery) ([]Candidate, error)
}
