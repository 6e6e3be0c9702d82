package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

// ScanServiceConfig holds configuration for the scan pipeline.
type ScanServiceConfig struct {
	CacheTTL               time.Duration
	MinConfidenceThreshold float64
	SearchLimit            int
	Orchestrator           OrchestratorConfig
	EnableDebugLogging     bool
}

// ScanService wires the full pipeline: recognize -> classify -> search ->
// gate -> score, with a cache in front so a repeat scan of the same label
// skips the expensive stages.
type ScanService struct {
	cache        domain.CacheRepository
	search       domain.SearchClient
	orchestrator *RecognitionOrchestrator
	classifier   *Classifier
	gatekeeper   *Gatekeeper
	scorer       *ConfidenceScorer

	cacheTTL      time.Duration
	minConfidence float64
	searchLimit   int
	debug         bool
}

// NewScanService creates the scan service and its pipeline components over
// one shared taxonomy registry.
func NewScanService(
	registry *taxonomy.Registry,
	cache domain.CacheRepository,
	search domain.SearchClient,
	recognizer domain.RecognitionClient,
	config ScanServiceConfig,
) *ScanService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}
	minConfidence := config.MinConfidenceThreshold
	if minConfidence <= 0 {
		minConfidence = 0.3
	}
	searchLimit := config.SearchLimit
	if searchLimit <= 0 {
		searchLimit = 20
	}

	orchConfig := config.Orchestrator
	orchConfig.EnableDebugLogging = orchConfig.EnableDebugLogging || config.EnableDebugLogging

	sizes := taxonomy.NewSizeParser()
	return &ScanService{
		cache:         cache,
		search:        search,
		orchestrator:  NewRecognitionOrchestrator(recognizer, orchConfig),
		classifier:    NewClassifier(registry, sizes, config.EnableDebugLogging),
		gatekeeper:    NewGatekeeper(registry, config.EnableDebugLogging),
		scorer:        NewConfidenceScorer(registry, sizes),
		cacheTTL:      cacheTTL,
		minConfidence: minConfidence,
		searchLimit:   searchLimit,
		debug:         config.EnableDebugLogging,
	}
}

// Classify exposes the classification stage: raw analysis in, structured
// classification out.
func (s *ScanService) Classify(analysis *domain.RawAnalysis) (*domain.ScanClassification, error) {
	return s.classifier.Classify(analysis)
}

// ClassifyText classifies bare scanned text.
func (s *ScanService) ClassifyText(text string) (*domain.ScanClassification, error) {
	return s.classifier.ClassifyText(text)
}

// Recognize exposes the recognition stage.
func (s *ScanService) Recognize(ctx context.Context, req domain.ScanRequest) (*domain.RecognitionOutcome, error) {
	return s.orchestrator.Recognize(ctx, req)
}

// GateAndScore filters candidates through the rejection gates, scores the
// survivors and returns them ranked. Pure and synchronous; the minimum
// confidence threshold is NOT applied here.
func (s *ScanService) GateAndScore(candidates []domain.Candidate, classification *domain.ScanClassification) []domain.ScoredCandidate {
	return s.scorer.ScoreAll(s.gatekeeper.Filter(candidates, classification), classification)
}

// FindAlternatives runs the whole pipeline for one scan. Candidates below
// the minimum confidence threshold are cut from the result; an empty list
// is a valid, reportable outcome.
func (s *ScanService) FindAlternatives(ctx context.Context, req domain.ScanRequest) (*domain.AlternativesResult, error) {
	cacheKey := s.cacheKeyFor(req)
	if cacheKey != "" {
		if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
			cached.Source = "cache"
			return cached, nil
		}
	}

	outcome, err := s.orchestrator.Recognize(ctx, req)
	if err != nil {
		return nil, err
	}

	classification, err := s.classifier.Classify(&outcome.Analysis)
	if err != nil {
		return nil, err
	}

	candidates, err := s.search.SearchProducts(ctx, s.buildQuery(classification))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailure, err)
	}

	scored := s.GateAndScore(candidates, classification)
	confident := make([]domain.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if sc.Confidence >= s.minConfidence {
			confident = append(confident, sc)
		}
	}

	if s.debug {
		log.Printf("[SCAN] %d candidates -> %d gated -> %d confident",
			len(candidates), len(scored), len(confident))
	}

	result := &domain.AlternativesResult{
		Classification: classification,
		Alternatives:   confident,
		MethodUsed:     outcome.MethodUsed,
		CostEstimate:   outcome.CostEstimate,
		Source:         "live",
	}

	if cacheKey != "" {
		if err := s.setInCache(ctx, cacheKey, result); err != nil && s.debug {
			log.Printf("[SCAN] cache write failed: %v", err)
		}
	}
	return result, nil
}

// buildQuery derives the weighted search query from a classification: the
// canonical type plus the form, scoped to the type's category when known.
func (s *ScanService) buildQuery(classification *domain.ScanClassification) domain.SearchQuery {
	parts := []string{classification.ProductType.Type}
	if classification.Form != nil && classification.Form.Form != "other" {
		parts = append(parts, classification.Form.Form)
	}
	return domain.SearchQuery{
		Text:     strings.TrimSpace(strings.Join(parts, " ")),
		Category: classification.ProductType.Category,
		Limit:    s.searchLimit,
	}
}

// cacheKeyFor builds a normalized key from the OCR text. Image-only scans
// are not cached (hashing raw frames is not worth a hit rate near zero).
func (s *ScanService) cacheKeyFor(req domain.ScanRequest) string {
	if req.OCR == nil || strings.TrimSpace(req.OCR.Text) == "" {
		return ""
	}
	return "scan:" + normalizeText(req.OCR.Text)
}

func (s *ScanService) getFromCache(ctx context.Context, key string) (*domain.AlternativesResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if result, ok := value.(*domain.AlternativesResult); ok {
		return result, nil
	}
	// The memory cache stores values JSON-round-tripped; rehydrate maps
	if raw, ok := value.(map[string]interface{}); ok {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, domain.ErrCacheMiss
		}
		var result domain.AlternativesResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, domain.ErrCacheMiss
		}
		return &result, nil
	}
	return nil, domain.ErrCacheMiss
}

func (s *ScanService) setInCache(ctx context.Context, key string, result *domain.AlternativesResult) error {
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}
