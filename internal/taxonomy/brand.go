package taxonomy

import "strings"

// DetectBrand scans the text for a known brand. The longest matched
// name/variation wins, so "SheaMoisture" beats a shorter brand that happens
// to share a substring; detection does not depend on table order.
func (r *Registry) DetectBrand(text string) (*BrandEntry, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil, false
	}

	var best *BrandEntry
	bestLen := 0
	for _, brand := range r.brands {
		if l := brandMatchLen(lower, brand); l > bestLen {
			bestLen = l
			best = brand
		}
	}
	return best, best != nil
}

// brandMatchLen returns the length of the longest name/variation of the
// brand contained in the text, or 0 when none match.
func brandMatchLen(lowerText string, brand *BrandEntry) int {
	longest := 0
	if name := strings.ToLower(brand.Name); strings.Contains(lowerText, name) && len(name) > longest {
		longest = len(name)
	}
	for _, v := range brand.Variations {
		if lv := strings.ToLower(v); strings.Contains(lowerText, lv) && len(lv) > longest {
			longest = len(lv)
		}
	}
	return longest
}

// BrandCategoryScore scores how well a candidate's category fits a detected
// brand: 1.0 when the category is among the brand's categories, 0.85 for an
// explicitly related pair, 0.7 otherwise.
func BrandCategoryScore(brand *BrandEntry, candidateCategory string) float64 {
	if brand == nil {
		return 0.8 // neutral: no brand detected
	}
	cat := normalizeKey(candidateCategory)
	for _, bc := range brand.Categories {
		if normalizeKey(bc) == cat {
			return 1.0
		}
	}
	for _, bc := range brand.Categories {
		if relatedCategories(normalizeKey(bc), cat) {
			return 0.85
		}
	}
	return 0.7
}

// relatedCategoryPairs lists category names close enough that a brand known
// for one plausibly covers the other.
var relatedCategoryPairs = map[string]string{
	"face care": "skincare",
	"skincare":  "face care",
	"body care": "skincare",
	"hair care": "men's care",
	"makeup":    "skincare",
}

func relatedCategories(a, b string) bool {
	return relatedCategoryPairs[a] == b || relatedCategoryPairs[b] == a
}
