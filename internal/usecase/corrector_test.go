package usecase

import (
	"testing"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

func TestCorrect(t *testing.T) {
	corrector := NewTaxonomyCorrector(taxonomy.NewRegistry(), false)

	t.Run("direct normalize accepts a known variation", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "face wash",
			RawText:     "gentle face wash for sensitive skin",
			Confidence:  0.9,
		})
		if correction.Type != "Facial Cleanser" {
			t.Errorf("Type = %q, want Facial Cleanser", correction.Type)
		}
		if correction.Confidence != 0.9 {
			t.Errorf("Confidence = %v, want 0.9 unchanged", correction.Confidence)
		}
		if correction.Strategy != "direct-normalize" {
			t.Errorf("Strategy = %q, want direct-normalize", correction.Strategy)
		}
	})

	t.Run("category narrowing resolves a broad guess", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "makeup",
			RawText:     "matte liquid foundation full coverage",
			Confidence:  0.8,
		})
		if correction.Type != "Foundation" {
			t.Errorf("Type = %q, want Foundation", correction.Type)
		}
		want := 0.8 * categoryNarrowMultiplier
		if !almostEqual(correction.Confidence, want) {
			t.Errorf("Confidence = %v, want %v", correction.Confidence, want)
		}
		if correction.Strategy != "category-narrowing" {
			t.Errorf("Strategy = %q, want category-narrowing", correction.Strategy)
		}
	})

	t.Run("raw text fallback recovers a missing guess", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "",
			RawText:     "CeraVe Foaming Facial Cleanser 12 fl oz",
			Confidence:  1.0,
		})
		if correction.Type != "Facial Cleanser" {
			t.Errorf("Type = %q, want Facial Cleanser", correction.Type)
		}
		if correction.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", correction.Confidence)
		}
		if correction.Strategy != "raw-text-fallback" {
			t.Errorf("Strategy = %q, want raw-text-fallback", correction.Strategy)
		}
	})

	t.Run("raw text fallback never exceeds analysis confidence", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "",
			RawText:     "CeraVe Foaming Facial Cleanser 12 fl oz",
			Confidence:  0.6,
		})
		if correction.Strategy != "raw-text-fallback" {
			t.Fatalf("Strategy = %q, want raw-text-fallback", correction.Strategy)
		}
		if correction.Confidence != 0.6 {
			t.Errorf("Confidence = %v, want capped at 0.6", correction.Confidence)
		}
	})

	t.Run("type text fallback matches the guess itself", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "curl defining custard",
			RawText:     "net wt 8 oz made in usa",
			Confidence:  0.8,
		})
		if correction.Type != "Hair Gel" {
			t.Errorf("Type = %q, want Hair Gel", correction.Type)
		}
		want := 0.8 * typeTextMultiplier
		if !almostEqual(correction.Confidence, want) {
			t.Errorf("Confidence = %v, want %v", correction.Confidence, want)
		}
		if correction.Strategy != "type-text-fallback" {
			t.Errorf("Strategy = %q, want type-text-fallback", correction.Strategy)
		}
	})

	t.Run("total miss keeps the original guess", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "mystery widget",
			RawText:     "zzz qqq xxx",
			Confidence:  0.5,
		})
		if correction.Type != "mystery widget" {
			t.Errorf("Type = %q, want original guess preserved", correction.Type)
		}
		if correction.Confidence != 0.5 {
			t.Errorf("Confidence = %v, want 0.5", correction.Confidence)
		}
		if correction.Strategy != "uncorrected" {
			t.Errorf("Strategy = %q, want uncorrected", correction.Strategy)
		}
	})

	t.Run("confidence is clamped", func(t *testing.T) {
		correction := corrector.Correct(&domain.RawAnalysis{
			ProductType: "shampoo",
			RawText:     "clarifying shampoo",
			Confidence:  1.7,
		})
		if correction.Confidence > 1.0 {
			t.Errorf("Confidence = %v, want clamped to 1.0", correction.Confidence)
		}
	})
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
