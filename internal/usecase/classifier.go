package usecase

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

// Package-level compiled regex patterns for text normalization
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s.]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Confidence assigned to attributes the recognizer stated explicitly
const explicitAttributeConfidence = 0.9

// Confidence assigned to forms inferred from type/name keywords
const inferredFormConfidence = 0.6

// Classifier turns raw recognition output (or raw scanned text) into a
// structured ScanClassification using the taxonomy registry and size
// parser. Stateless apart from its immutable dependencies; safe for
// concurrent use.
type Classifier struct {
	registry  *taxonomy.Registry
	sizes     *taxonomy.SizeParser
	corrector *TaxonomyCorrector
	debug     bool
}

// NewClassifier creates a classifier with its taxonomy dependencies.
func NewClassifier(registry *taxonomy.Registry, sizes *taxonomy.SizeParser, debug bool) *Classifier {
	return &Classifier{
		registry:  registry,
		sizes:     sizes,
		corrector: NewTaxonomyCorrector(registry, debug),
		debug:     debug,
	}
}

// ClassifyText classifies bare scanned text with no recognizer metadata.
func (c *Classifier) ClassifyText(text string) (*domain.ScanClassification, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidRequest
	}
	analysis := &domain.RawAnalysis{RawText: text, Confidence: 1.0}
	return c.Classify(analysis)
}

// Classify runs a raw analysis through taxonomy correction, form/brand/
// ingredient detection and size parsing. The returned classification is
// built once and never mutated.
func (c *Classifier) Classify(analysis *domain.RawAnalysis) (*domain.ScanClassification, error) {
	if analysis == nil || strings.TrimSpace(analysis.RawText) == "" {
		return nil, domain.ErrInvalidRequest
	}

	correction := c.corrector.Correct(analysis)

	productType := domain.TypeMatch{
		Type:       correction.Type,
		Confidence: correction.Confidence,
	}
	if entry, ok := c.registry.Entry(correction.Type); ok {
		productType.Category = entry.Category
		productType.Subcategory = entry.Subcategory
	}

	classification := &domain.ScanClassification{
		ProductType:       productType,
		Form:              c.classifyForm(analysis, correction.Type),
		Brand:             c.classifyBrand(analysis),
		Ingredients:       c.registry.DetectIngredients(analysis.RawText),
		IngredientClarity: c.registry.ClarityScore(analysis.RawText, correction.Type),
		Size:              c.classifySize(analysis),
		RawText:           analysis.RawText,
		NormalizedText:    normalizeText(analysis.RawText),
		ClassifiedAt:      time.Now(),
	}

	if c.debug {
		log.Printf("[CLASSIFY] type=%q (%.2f, %s) form=%v brand=%v ingredients=%d clarity=%.2f",
			productType.Type, productType.Confidence, correction.Strategy,
			classification.Form, classification.Brand,
			len(classification.Ingredients), classification.IngredientClarity)
	}
	return classification, nil
}

// classifyForm resolves the dispensing form. Recognizer-stated and
// text-mentioned forms are explicit; keyword inference from the type and
// text is a weaker, inferred signal.
func (c *Classifier) classifyForm(analysis *domain.RawAnalysis, productType string) *domain.FormMatch {
	if analysis.Form != "" {
		if canonical, ok := c.registry.NormalizeForm(analysis.Form); ok {
			return &domain.FormMatch{
				Form:       canonical,
				Confidence: explicitAttributeConfidence,
				Source:     domain.FormSourceExplicit,
			}
		}
	}

	if form, confidence, ok := c.registry.ExtractForm(analysis.RawText); ok && confidence > 0 {
		return &domain.FormMatch{
			Form:       form,
			Confidence: clamp01(confidence),
			Source:     domain.FormSourceExplicit,
		}
	}

	if form, ok := c.registry.InferForm(productType, analysis.RawText); ok {
		return &domain.FormMatch{
			Form:       form,
			Confidence: inferredFormConfidence,
			Source:     domain.FormSourceInferred,
		}
	}

	return nil
}

// classifyBrand prefers taxonomy-known brands (searching the recognizer's
// brand field plus the raw text); an unrecognized recognizer brand is kept
// with reduced confidence rather than dropped.
func (c *Classifier) classifyBrand(analysis *domain.RawAnalysis) *domain.BrandMatch {
	searchText := analysis.Brand + " " + analysis.RawText
	if brand, ok := c.registry.DetectBrand(searchText); ok {
		return &domain.BrandMatch{
			Name:        brand.Name,
			Positioning: brand.Positioning,
			Categories:  brand.Categories,
			Confidence:  explicitAttributeConfidence,
		}
	}

	if analysis.Brand != "" {
		return &domain.BrandMatch{
			Name:       analysis.Brand,
			Confidence: 0.5,
		}
	}
	return nil
}

// classifySize parses the recognizer's size field first, then the raw text.
func (c *Classifier) classifySize(analysis *domain.RawAnalysis) *domain.SizeMatch {
	for _, text := range []string{analysis.Size, analysis.RawText} {
		if text == "" {
			continue
		}
		if parsed, ok := c.sizes.ExtractSize(text); ok {
			return &domain.SizeMatch{
				Value:      parsed.Value,
				Unit:       parsed.Unit,
				Confidence: parsed.Confidence,
			}
		}
	}
	return nil
}

// normalizeText lowercases, strips punctuation and collapses whitespace.
func normalizeText(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, " ")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
