package usecase

import (
	"testing"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

func newTestScorer() *ConfidenceScorer {
	return NewConfidenceScorer(taxonomy.NewRegistry(), taxonomy.NewSizeParser())
}

func TestTierWeights(t *testing.T) {
	sum := weightProductType + weightForm + weightBrandCategory +
		weightIngredientClarity + weightSize + weightVisual
	if !almostEqual(sum, 1.0) {
		t.Fatalf("tier weights sum to %v, want 1.0", sum)
	}

	// Pinned: these are part of the scoring contract
	if weightProductType != 0.40 || weightForm != 0.25 || weightBrandCategory != 0.15 ||
		weightIngredientClarity != 0.10 || weightSize != 0.05 || weightVisual != 0.05 {
		t.Fatal("tier weights changed; update the scoring contract deliberately")
	}
}

func TestScore(t *testing.T) {
	scorer := newTestScorer()

	classification := &domain.ScanClassification{
		ProductType: domain.TypeMatch{
			Type:       "Facial Cleanser",
			Confidence: 1.0,
			Category:   taxonomy.CategorySkincare,
		},
		Form: &domain.FormMatch{
			Form:       "foam",
			Confidence: 1.0,
			Source:     domain.FormSourceExplicit,
		},
		Brand: &domain.BrandMatch{
			Name:        "CeraVe",
			Positioning: "clinical",
			Confidence:  0.9,
		},
		IngredientClarity: 1.0,
		Size: &domain.SizeMatch{
			Value:      12,
			Unit:       taxonomy.UnitFluidOunce,
			Confidence: 0.9,
		},
		RawText: "CeraVe Foaming Facial Cleanser 12 fl oz",
	}

	t.Run("strong candidate breakdown", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			ID:          "alt-1",
			Name:        "Gentle Foaming Facial Cleanser 8 fl oz",
			Company:     "Hanahana Beauty",
			Category:    "Skincare",
			ProductType: "Facial Cleanser",
		}, classification)

		b := scored.Breakdown
		if b.ProductType != 1.0 {
			t.Errorf("ProductType tier = %v, want 1.0", b.ProductType)
		}
		if b.Form != 1.0 {
			t.Errorf("Form tier = %v, want 1.0", b.Form)
		}
		if b.BrandCategory != 1.0 {
			t.Errorf("BrandCategory tier = %v, want 1.0", b.BrandCategory)
		}
		if b.IngredientClarity != 1.0 {
			t.Errorf("IngredientClarity tier = %v, want 1.0", b.IngredientClarity)
		}
		if b.Size != 0.7 {
			t.Errorf("Size tier = %v, want 0.7 for the 1.5x ratio", b.Size)
		}
		if b.Visual != visualScoreNeutral {
			t.Errorf("Visual tier = %v, want neutral %v", b.Visual, visualScoreNeutral)
		}
		if b.CriteriaMatched != 6 {
			t.Errorf("CriteriaMatched = %d, want 6", b.CriteriaMatched)
		}
		if !almostEqual(scored.Confidence, 0.975) {
			t.Errorf("Confidence = %v, want 0.975", scored.Confidence)
		}
		if scored.Explanation == "" {
			t.Error("Explanation is empty")
		}
	})

	t.Run("catalog synonym resolves to exact", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Moisture Rich Shampoo",
			Category:    "Hair Care",
			ProductType: "hair cleanser",
		}, &domain.ScanClassification{
			ProductType: domain.TypeMatch{Type: "Shampoo", Confidence: 0.9},
		})
		// "hair cleanser" normalizes to Shampoo before comparison
		if scored.Breakdown.ProductType != typeScoreExact {
			t.Errorf("ProductType tier = %v, want %v", scored.Breakdown.ProductType, typeScoreExact)
		}
	})

	t.Run("same category type scores 0.6", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Silky Eye Repair",
			Category:    "Skincare",
			ProductType: "Eye Cream",
		}, &domain.ScanClassification{
			ProductType: domain.TypeMatch{Type: "Toner", Confidence: 0.9},
		})
		if scored.Breakdown.ProductType != typeScoreSameCategory {
			t.Errorf("ProductType tier = %v, want %v", scored.Breakdown.ProductType, typeScoreSameCategory)
		}
	})

	t.Run("missing forms fall to the unknown score", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Mystery Product",
			ProductType: "Toner",
		}, &domain.ScanClassification{
			ProductType: domain.TypeMatch{Type: "Toner", Confidence: 0.9},
		})
		if scored.Breakdown.Form != formScoreUnknown {
			t.Errorf("Form tier = %v, want %v", scored.Breakdown.Form, formScoreUnknown)
		}
	})

	t.Run("conflicting form bottoms out at the floor", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Facial Cleansing Bar",
			ProductType: "Facial Cleanser",
			Form:        "bar",
		}, classification)
		if scored.Breakdown.Form != formScoreFloor {
			t.Errorf("Form tier = %v, want floor %v", scored.Breakdown.Form, formScoreFloor)
		}
	})

	t.Run("size mismatch respects the floor", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Travel Foaming Facial Cleanser 2 fl oz",
			ProductType: "Facial Cleanser",
			Category:    "Skincare",
		}, classification)
		if scored.Breakdown.Size != sizeScoreFloor {
			t.Errorf("Size tier = %v, want floor %v", scored.Breakdown.Size, sizeScoreFloor)
		}
	})

	t.Run("no size information is neutral", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Foaming Facial Cleanser",
			ProductType: "Facial Cleanser",
		}, classification)
		if scored.Breakdown.Size != sizeScoreNeutral {
			t.Errorf("Size tier = %v, want neutral %v", scored.Breakdown.Size, sizeScoreNeutral)
		}
	})

	t.Run("unknown brand is neutral", func(t *testing.T) {
		scored := scorer.Score(domain.Candidate{
			Name:        "Foaming Facial Cleanser",
			Category:    "Skincare",
			ProductType: "Facial Cleanser",
		}, &domain.ScanClassification{
			ProductType: domain.TypeMatch{Type: "Facial Cleanser", Confidence: 0.9},
			Brand:       &domain.BrandMatch{Name: "Acme Organics", Confidence: 0.5},
		})
		if scored.Breakdown.BrandCategory != 0.8 {
			t.Errorf("BrandCategory tier = %v, want neutral 0.8", scored.Breakdown.BrandCategory)
		}
	})

	t.Run("every tier stays within bounds", func(t *testing.T) {
		candidates := []domain.Candidate{
			{Name: "Gentle Foaming Facial Cleanser 8 fl oz", Category: "Skincare", ProductType: "Facial Cleanser"},
			{Name: "Shea Butter Body Lotion", Category: "Body Care", ProductType: "Body Lotion"},
			{Name: "Unrelated Gadget"},
			{Name: ""},
		}
		for _, candidate := range candidates {
			scored := scorer.Score(candidate, classification)
			tiers := []float64{
				scored.Breakdown.ProductType, scored.Breakdown.Form,
				scored.Breakdown.BrandCategory, scored.Breakdown.IngredientClarity,
				scored.Breakdown.Size, scored.Breakdown.Visual,
			}
			for i, tier := range tiers {
				if tier < 0 || tier > 1 {
					t.Errorf("candidate %q tier %d = %v out of [0,1]", candidate.Name, i, tier)
				}
			}
			if scored.Confidence < 0 || scored.Confidence > 1 {
				t.Errorf("candidate %q confidence %v out of [0,1]", candidate.Name, scored.Confidence)
			}
		}
	})
}

func TestScoreAll(t *testing.T) {
	scorer := newTestScorer()
	classification := &domain.ScanClassification{
		ProductType: domain.TypeMatch{
			Type:       "Facial Cleanser",
			Confidence: 1.0,
			Category:   taxonomy.CategorySkincare,
		},
		Form: &domain.FormMatch{Form: "foam", Confidence: 1.0, Source: domain.FormSourceExplicit},
	}

	t.Run("sorted by confidence descending", func(t *testing.T) {
		scored := scorer.ScoreAll([]domain.Candidate{
			{ID: "weak", Name: "Nourishing Hair Cream", Category: "Hair Care", ProductType: "Hair Cream"},
			{ID: "strong", Name: "Foaming Facial Cleanser", Category: "Skincare", ProductType: "Facial Cleanser"},
		}, classification)

		if len(scored) != 2 {
			t.Fatalf("scored %d candidates, want 2", len(scored))
		}
		if scored[0].Candidate.ID != "strong" {
			t.Errorf("top candidate = %q, want the exact-type match first", scored[0].Candidate.ID)
		}
		for i := 1; i < len(scored); i++ {
			if scored[i].Confidence > scored[i-1].Confidence {
				t.Errorf("result not sorted at index %d", i)
			}
		}
	})

	t.Run("does not apply any threshold", func(t *testing.T) {
		scored := scorer.ScoreAll([]domain.Candidate{
			{ID: "poor", Name: "Unrelated Gadget"},
		}, classification)
		if len(scored) != 1 {
			t.Fatalf("scored %d, want 1; thresholds are the caller's concern", len(scored))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if scored := scorer.ScoreAll(nil, classification); len(scored) != 0 {
			t.Errorf("scored = %v, want empty", scored)
		}
	})
}
