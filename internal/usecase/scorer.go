package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

// Tier weights. These sum to exactly 1.0 and are pinned by a regression
// test; change them only together.
const (
	weightProductType       = 0.40
	weightForm              = 0.25
	weightBrandCategory     = 0.15
	weightIngredientClarity = 0.10
	weightSize              = 0.05
	weightVisual            = 0.05
)

// Product-type tier scores
const (
	typeScoreExact         = 1.0
	typeScoreSubstringBase = 0.85 // scaled up to 1.0 by overlap ratio
	typeScoreSynonym       = 0.8
	typeScoreSameCategory  = 0.6
	typeScoreKeywordBase   = 0.3 // scaled up to 0.6 by word-overlap ratio
)

// Form tier scores. The floor is never zero: missing form information must
// not disqualify a candidate outright.
const (
	formScoreExact      = 1.0
	formScoreCompatible = 0.9
	formScoreUnknown    = 0.85
	formScoreFloor      = 0.75
)

// Size tier scores
const (
	sizeScoreFloor   = 0.7
	sizeScoreNeutral = 0.8
)

// Visual tier placeholder until an image-similarity signal exists
const visualScoreNeutral = 0.8

// criteriaMatchedThreshold counts a tier as "matched" in the breakdown
const criteriaMatchedThreshold = 0.7

// ConfidenceScorer computes a weighted six-tier confidence score per
// candidate and ranks the results. It is a pure ranking function: minimum
// confidence thresholds are the caller's concern.
type ConfidenceScorer struct {
	registry *taxonomy.Registry
	sizes    *taxonomy.SizeParser
}

// NewConfidenceScorer creates a scorer over the given taxonomy.
func NewConfidenceScorer(registry *taxonomy.Registry, sizes *taxonomy.SizeParser) *ConfidenceScorer {
	return &ConfidenceScorer{registry: registry, sizes: sizes}
}

// ScoreAll scores every candidate and returns them sorted by confidence,
// descending. Scoring individual candidates is independent, so the input
// order only matters for tie stability.
func (s *ConfidenceScorer) ScoreAll(candidates []domain.Candidate, classification *domain.ScanClassification) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, s.Score(candidate, classification))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
	return scored
}

// Score computes the weighted cumulative confidence for one candidate.
func (s *ConfidenceScorer) Score(candidate domain.Candidate, classification *domain.ScanClassification) domain.ScoredCandidate {
	breakdown := domain.ScoreBreakdown{
		ProductType:       s.productTypeTier(&candidate, classification),
		Form:              s.formTier(&candidate, classification),
		BrandCategory:     s.brandTier(&candidate, classification),
		IngredientClarity: clamp01(classification.IngredientClarity),
		Size:              s.sizeTier(&candidate, classification),
		Visual:            visualScoreNeutral,
	}
	breakdown.CriteriaMatched = countCriteria(&breakdown)

	confidence := breakdown.ProductType*weightProductType +
		breakdown.Form*weightForm +
		breakdown.BrandCategory*weightBrandCategory +
		breakdown.IngredientClarity*weightIngredientClarity +
		breakdown.Size*weightSize +
		breakdown.Visual*weightVisual

	return domain.ScoredCandidate{
		Candidate:   candidate,
		Confidence:  clamp01(confidence),
		Breakdown:   breakdown,
		Explanation: explain(&breakdown),
	}
}

// productTypeTier compares the scanned type against the candidate's type,
// falling back to the candidate's name when the catalog type field is
// empty or unresolvable.
func (s *ConfidenceScorer) productTypeTier(candidate *domain.Candidate, classification *domain.ScanClassification) float64 {
	scanned := classification.ProductType.Type
	if scanned == "" {
		return 0
	}

	candidateType := s.resolveCandidateType(candidate)
	if candidateType == "" {
		return s.keywordOverlapScore(scanned, candidate.Name)
	}

	scannedCanonical, scannedKnown := s.registry.Normalize(scanned)
	candidateCanonical, candidateKnown := s.registry.Normalize(candidateType)

	if scannedKnown && candidateKnown && scannedCanonical == candidateCanonical {
		return typeScoreExact
	}

	// Substring/direct match, scaled by how much of the longer string the
	// shorter one covers
	scanLower := strings.ToLower(scanned)
	candLower := strings.ToLower(candidateType)
	if scanLower == candLower {
		return typeScoreExact
	}
	if strings.Contains(scanLower, candLower) || strings.Contains(candLower, scanLower) {
		shorter, longer := len(scanLower), len(candLower)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		overlap := float64(shorter) / float64(longer)
		return typeScoreSubstringBase + (typeScoreExact-typeScoreSubstringBase)*overlap
	}

	if s.registry.AreSynonyms(scanned, candidateType) {
		return typeScoreSynonym
	}

	if scannedKnown && candidateKnown {
		scanEntry, _ := s.registry.Entry(scannedCanonical)
		candEntry, _ := s.registry.Entry(candidateCanonical)
		if scanEntry != nil && candEntry != nil && scanEntry.Category == candEntry.Category {
			return typeScoreSameCategory
		}
	}

	return s.keywordOverlapScore(scanned, candidateType+" "+candidate.Name)
}

// resolveCandidateType trusts the catalog's type field when it normalizes,
// otherwise classifies the candidate's name against the taxonomy.
func (s *ConfidenceScorer) resolveCandidateType(candidate *domain.Candidate) string {
	if candidate.ProductType != "" {
		if canonical, ok := s.registry.Normalize(candidate.ProductType); ok {
			return canonical
		}
	}
	if match, ok := s.registry.FindBestMatch(candidate.Name); ok && match.Confidence >= 0.4 {
		return match.Entry.Canonical
	}
	if candidate.ProductType != "" {
		return candidate.ProductType
	}
	return ""
}

// keywordOverlapScore maps token overlap between the scanned type and the
// candidate text to the 0.3-0.6 band, or 0 with no overlap.
func (s *ConfidenceScorer) keywordOverlapScore(scannedType, candidateText string) float64 {
	typeTokens := tokenizeName(scannedType)
	if len(typeTokens) == 0 {
		return 0
	}
	candidateTokens := tokenSet(tokenizeName(candidateText))

	matched := 0
	for _, token := range typeTokens {
		if candidateTokens[token] {
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	ratio := float64(matched) / float64(len(typeTokens))
	return typeScoreKeywordBase + (typeScoreSameCategory-typeScoreKeywordBase)*ratio
}

// formTier compares dispensing forms, degrading to documented neutral
// values rather than zero.
func (s *ConfidenceScorer) formTier(candidate *domain.Candidate, classification *domain.ScanClassification) float64 {
	candidateForm := ""
	if candidate.Form != "" {
		candidateForm, _ = s.registry.NormalizeForm(candidate.Form)
	}
	if candidateForm == "" {
		if form, _, ok := s.registry.ExtractForm(candidate.Name); ok {
			candidateForm = form
		}
	}

	scanForm := ""
	if classification.Form != nil {
		scanForm, _ = s.registry.NormalizeForm(classification.Form.Form)
	}

	if scanForm == "" || candidateForm == "" || scanForm == "other" || candidateForm == "other" {
		return formScoreUnknown
	}
	if scanForm == candidateForm {
		return formScoreExact
	}
	if s.registry.AreFormsCompatible(scanForm, candidateForm) {
		return formScoreCompatible
	}
	return formScoreFloor
}

// brandTier scores the candidate's category against the detected brand's
// home categories.
func (s *ConfidenceScorer) brandTier(candidate *domain.Candidate, classification *domain.ScanClassification) float64 {
	if classification.Brand == nil {
		return taxonomy.BrandCategoryScore(nil, candidate.Category)
	}
	brand, ok := s.registry.DetectBrand(classification.Brand.Name)
	if !ok {
		return taxonomy.BrandCategoryScore(nil, candidate.Category)
	}
	return taxonomy.BrandCategoryScore(brand, candidate.Category)
}

// sizeTier compares sizes with a floor: a size mismatch alone should not
// tank an otherwise-strong match.
func (s *ConfidenceScorer) sizeTier(candidate *domain.Candidate, classification *domain.ScanClassification) float64 {
	if classification.Size == nil {
		return sizeScoreNeutral
	}
	candidateSize, ok := s.sizes.ExtractSize(candidate.Name)
	if !ok {
		return sizeScoreNeutral
	}

	scanSize := &taxonomy.ParsedSize{
		Value:      classification.Size.Value,
		Unit:       classification.Size.Unit,
		Confidence: classification.Size.Confidence,
	}
	score := s.sizes.ScoreCompatibility(scanSize, candidateSize)
	if score < sizeScoreFloor {
		return sizeScoreFloor
	}
	return score
}

func countCriteria(b *domain.ScoreBreakdown) int {
	count := 0
	for _, score := range []float64{b.ProductType, b.Form, b.BrandCategory, b.IngredientClarity, b.Size, b.Visual} {
		if score >= criteriaMatchedThreshold {
			count++
		}
	}
	return count
}

// explain renders a short human-readable account of the breakdown.
func explain(b *domain.ScoreBreakdown) string {
	parts := []string{
		fmt.Sprintf("type %.2f", b.ProductType),
		fmt.Sprintf("form %.2f", b.Form),
		fmt.Sprintf("brand %.2f", b.BrandCategory),
		fmt.Sprintf("clarity %.2f", b.IngredientClarity),
		fmt.Sprintf("size %.2f", b.Size),
	}
	return fmt.Sprintf("%d/6 criteria matched (%s)", b.CriteriaMatched, strings.Join(parts, ", "))
}
