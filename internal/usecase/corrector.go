package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

// Confidence multipliers and thresholds for the correction waterfall. Small
// changes here compound across steps, so each is pinned by a test.
const (
	categoryNarrowMultiplier = 0.85
	typeTextMultiplier       = 0.90
	rawTextFloor             = 0.70

	categoryNarrowMinScore = 2.0
	rawTextMinConfidence   = 0.4
	typeTextMinConfidence  = 0.3

	formMatchBonus = 2.0
)

// Correction is a corrected product type with its adjusted confidence.
type Correction struct {
	Type       string
	Confidence float64
	// Strategy names the waterfall step that produced the correction
	Strategy string
}

// correctionStrategy attempts one correction approach; ok=false means the
// waterfall moves on to the next strategy.
type correctionStrategy struct {
	name  string
	apply func(analysis *domain.RawAnalysis) (string, float64, bool)
}

// TaxonomyCorrector post-processes a recognizer's raw product-type guess
// against the taxonomy. Strategies are tried in order and the first success
// wins; if every strategy fails the original guess is kept unchanged.
type TaxonomyCorrector struct {
	registry   *taxonomy.Registry
	strategies []correctionStrategy
	debug      bool
}

// NewTaxonomyCorrector creates a corrector over the given registry.
func NewTaxonomyCorrector(registry *taxonomy.Registry, debug bool) *TaxonomyCorrector {
	c := &TaxonomyCorrector{registry: registry, debug: debug}
	c.strategies = []correctionStrategy{
		{"direct-normalize", c.directNormalize},
		{"category-narrowing", c.categoryNarrowing},
		{"raw-text-fallback", c.rawTextFallback},
		{"type-text-fallback", c.typeTextFallback},
	}
	return c
}

// Correct runs the waterfall over the analysis. The original product type is
// never discarded: a total miss returns it as-is with its original
// confidence.
func (c *TaxonomyCorrector) Correct(analysis *domain.RawAnalysis) Correction {
	for _, s := range c.strategies {
		if corrected, confidence, ok := s.apply(analysis); ok {
			if c.debug {
				log.Printf("[CORRECT] %s: %q -> %q (confidence %.2f)",
					s.name, analysis.ProductType, corrected, confidence)
			}
			return Correction{Type: corrected, Confidence: clamp01(confidence), Strategy: s.name}
		}
	}

	if c.debug {
		log.Printf("[CORRECT] no strategy matched, keeping %q", analysis.ProductType)
	}
	return Correction{
		Type:       analysis.ProductType,
		Confidence: clamp01(analysis.Confidence),
		Strategy:   "uncorrected",
	}
}

// directNormalize accepts the guess unchanged when it already normalizes to
// a canonical type.
func (c *TaxonomyCorrector) directNormalize(analysis *domain.RawAnalysis) (string, float64, bool) {
	canonical, ok := c.registry.Normalize(analysis.ProductType)
	if !ok {
		return "", 0, false
	}
	return canonical, analysis.Confidence, true
}

// categoryNarrowing handles guesses that name a broad category ("makeup")
// rather than a type: only that category's types are scored against the raw
// text, with word-boundary matching and a bonus when the detected form is
// among a candidate's typical forms.
func (c *TaxonomyCorrector) categoryNarrowing(analysis *domain.RawAnalysis) (string, float64, bool) {
	category, ok := c.registry.CategoryFor(analysis.ProductType)
	if !ok {
		return "", 0, false
	}

	detectedForm := c.detectedForm(analysis)
	lower := strings.ToLower(analysis.RawText)

	var best *taxonomy.ProductTypeEntry
	bestScore := 0.0
	for _, entry := range c.registry.TypesInCategory(category) {
		score := wordBoundaryScore(lower, entry)
		if detectedForm != "" && formInTypicalForms(entry, detectedForm) {
			score += formMatchBonus
		}
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if best == nil || bestScore < categoryNarrowMinScore {
		return "", 0, false
	}
	return best.Canonical, analysis.Confidence * categoryNarrowMultiplier, true
}

// rawTextFallback matches the full raw text against every type, requiring
// both a confident match and form compatibility with the candidate's
// typical forms.
func (c *TaxonomyCorrector) rawTextFallback(analysis *domain.RawAnalysis) (string, float64, bool) {
	match, ok := c.registry.FindBestMatch(analysis.RawText)
	if !ok || match.Confidence < rawTextMinConfidence {
		return "", 0, false
	}
	if !c.formAcceptable(analysis, match.Entry) {
		return "", 0, false
	}

	confidence := match.Confidence
	if confidence < rawTextFloor {
		confidence = rawTextFloor
	}
	if analysis.Confidence < confidence {
		confidence = analysis.Confidence
	}
	return match.Entry.Canonical, confidence, true
}

// typeTextFallback is the last resort: match the guess text itself, with a
// lower confidence bar and a penalty multiplier.
func (c *TaxonomyCorrector) typeTextFallback(analysis *domain.RawAnalysis) (string, float64, bool) {
	match, ok := c.registry.FindBestMatch(analysis.ProductType)
	if !ok || match.Confidence < typeTextMinConfidence {
		return "", 0, false
	}
	if !c.formAcceptable(analysis, match.Entry) {
		return "", 0, false
	}
	return match.Entry.Canonical, analysis.Confidence * typeTextMultiplier, true
}

// detectedForm resolves the scan's dispensing form from the recognizer
// field first, then from the raw text.
func (c *TaxonomyCorrector) detectedForm(analysis *domain.RawAnalysis) string {
	if analysis.Form != "" {
		if canonical, ok := c.registry.NormalizeForm(analysis.Form); ok {
			return canonical
		}
	}
	if form, _, ok := c.registry.ExtractForm(analysis.RawText); ok {
		return form
	}
	return ""
}

// formAcceptable reports whether the scan's detected form could plausibly
// belong to the candidate type. No detected form, or a type without typical
// forms, never blocks.
func (c *TaxonomyCorrector) formAcceptable(analysis *domain.RawAnalysis, entry *taxonomy.ProductTypeEntry) bool {
	form := c.detectedForm(analysis)
	if form == "" {
		return true
	}
	return c.registry.TypicalFormsCompatible(entry, form)
}

// formInTypicalForms checks direct membership (compatibility not required;
// the bonus rewards an exact fit).
func formInTypicalForms(entry *taxonomy.ProductTypeEntry, form string) bool {
	for _, tf := range entry.TypicalForms {
		if tf == form {
			return true
		}
	}
	return false
}

// wordBoundaryScore scores an entry against text using whole-word matching
// instead of raw substring containment, so "men" cannot match inside
// "women". Same +2/+3/+2 weights as the registry's containment scorer.
func wordBoundaryScore(lowerText string, entry *taxonomy.ProductTypeEntry) float64 {
	score := 0.0
	for _, kw := range entry.Keywords {
		if wordBoundaryContains(lowerText, kw) {
			score += 2.0
		}
	}
	if wordBoundaryContains(lowerText, entry.Canonical) {
		score += 3.0
	}
	for _, v := range entry.Variations {
		if wordBoundaryContains(lowerText, v) {
			score += 2.0
		}
	}
	return score
}

func wordBoundaryContains(lowerText, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(lowerText)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
