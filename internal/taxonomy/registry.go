package taxonomy

import (
	"strings"
)

// Match scoring weights for findBestMatch-style free-text scans
const (
	keywordMatchScore   = 2.0
	canonicalMatchScore = 3.0
	variationMatchScore = 2.0

	typeScoreDivisor = 5.0 // product-type confidence = min(score/5, 1.0)
	formScoreDivisor = 4.0 // form confidence = min(score/4, 1.0)
)

// Registry holds the immutable taxonomy lookup tables. Built once at startup
// and safe for unlimited concurrent reads.
type Registry struct {
	typeOrder       []*ProductTypeEntry
	typesByKey      map[string]*ProductTypeEntry // canonical + variations, lowercased
	typesBySynonym  map[string]*ProductTypeEntry
	typesByCategory map[string][]*ProductTypeEntry
	categoryNames   map[string]string // lowercased -> proper case

	formOrder  []*FormEntry
	formsByKey map[string]*FormEntry

	brands          []*BrandEntry
	ingredientOrder []*IngredientEntry
}

// TypeMatchResult pairs a matched entry with its confidence.
type TypeMatchResult struct {
	Entry      *ProductTypeEntry
	Confidence float64
}

// NewRegistry builds the registry from the static taxonomy tables.
func NewRegistry() *Registry {
	r := &Registry{
		typesByKey:      make(map[string]*ProductTypeEntry),
		typesBySynonym:  make(map[string]*ProductTypeEntry),
		typesByCategory: make(map[string][]*ProductTypeEntry),
		categoryNames:   make(map[string]string),
		formsByKey:      make(map[string]*FormEntry),
	}

	for i := range productTypes {
		entry := &productTypes[i]
		r.typeOrder = append(r.typeOrder, entry)
		r.typesByKey[strings.ToLower(entry.Canonical)] = entry
		for _, v := range entry.Variations {
			key := strings.ToLower(v)
			if _, exists := r.typesByKey[key]; !exists {
				r.typesByKey[key] = entry
			}
		}
		for _, s := range entry.Synonyms {
			key := strings.ToLower(s)
			if _, exists := r.typesBySynonym[key]; !exists {
				r.typesBySynonym[key] = entry
			}
		}
		r.typesByCategory[entry.Category] = append(r.typesByCategory[entry.Category], entry)
		r.categoryNames[strings.ToLower(entry.Category)] = entry.Category
	}

	for i := range forms {
		entry := &forms[i]
		r.formOrder = append(r.formOrder, entry)
		r.formsByKey[strings.ToLower(entry.Canonical)] = entry
		for _, v := range entry.Variations {
			key := strings.ToLower(v)
			if _, exists := r.formsByKey[key]; !exists {
				r.formsByKey[key] = entry
			}
		}
	}

	for i := range brands {
		r.brands = append(r.brands, &brands[i])
	}
	for i := range ingredients {
		r.ingredientOrder = append(r.ingredientOrder, &ingredients[i])
	}

	return r
}

// Normalize resolves free text to a canonical product type name. Tries exact
// canonical match, then variation match, then synonym match. Returns false
// when no entry matches.
func (r *Registry) Normalize(input string) (string, bool) {
	key := normalizeKey(input)
	if key == "" {
		return "", false
	}
	if entry, ok := r.typesByKey[key]; ok {
		return entry.Canonical, true
	}
	if entry, ok := r.typesBySynonym[key]; ok {
		return entry.Canonical, true
	}
	return "", false
}

// Entry returns the entry for a canonical (or normalizable) type name.
func (r *Registry) Entry(name string) (*ProductTypeEntry, bool) {
	canonical, ok := r.Normalize(name)
	if !ok {
		return nil, false
	}
	entry, ok := r.typesByKey[strings.ToLower(canonical)]
	return entry, ok
}

// AreSynonyms reports whether two type names refer to the same concept:
// either both normalize to the same canonical name, or one appears in the
// other's synonym list.
func (r *Registry) AreSynonyms(a, b string) bool {
	ca, okA := r.Normalize(a)
	cb, okB := r.Normalize(b)
	if okA && okB && ca == cb {
		return true
	}

	keyA := normalizeKey(a)
	keyB := normalizeKey(b)
	if okA {
		if entry, _ := r.typesByKey[strings.ToLower(ca)]; entry != nil {
			for _, s := range entry.Synonyms {
				if normalizeKey(s) == keyB {
					return true
				}
			}
		}
	}
	if okB {
		if entry, _ := r.typesByKey[strings.ToLower(cb)]; entry != nil {
			for _, s := range entry.Synonyms {
				if normalizeKey(s) == keyA {
					return true
				}
			}
		}
	}
	return false
}

// FindBestMatch scores every registered type against the text and returns
// the highest scorer. Scoring: +2 per keyword contained, +3 if the canonical
// name is contained, +2 per variation contained; confidence is
// min(score/5, 1.0). Ties resolve to the first maximum in registration
// order, so more specific entries are registered first.
func (r *Registry) FindBestMatch(text string) (*TypeMatchResult, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil, false
	}

	var best *ProductTypeEntry
	bestScore := 0.0

	for _, entry := range r.typeOrder {
		score := scoreEntryAgainst(lower, entry.Canonical, entry.Variations, entry.Keywords)
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if best == nil {
		return nil, false
	}

	confidence := bestScore / typeScoreDivisor
	if confidence > 1.0 {
		confidence = 1.0
	}
	return &TypeMatchResult{Entry: best, Confidence: confidence}, true
}

// TypesInCategory returns the registered types for a category, in
// registration order. The returned slice must not be modified.
func (r *Registry) TypesInCategory(category string) []*ProductTypeEntry {
	return r.typesByCategory[category]
}

// CategoryFor resolves a broad free-text term ("makeup", "hair care") to a
// category name. Checks the broad-term table first, then category names
// themselves.
func (r *Registry) CategoryFor(term string) (string, bool) {
	key := normalizeKey(term)
	if cat, ok := broadCategoryTerms[key]; ok {
		return cat, true
	}
	if cat, ok := r.categoryNames[key]; ok {
		return cat, true
	}
	return "", false
}

// scoreEntryAgainst applies the shared containment scoring scheme.
func scoreEntryAgainst(lowerText, canonical string, variations, keywords []string) float64 {
	score := 0.0
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lowerText, strings.ToLower(kw)) {
			score += keywordMatchScore
		}
	}
	if strings.Contains(lowerText, strings.ToLower(canonical)) {
		score += canonicalMatchScore
	}
	for _, v := range variations {
		if v != "" && strings.Contains(lowerText, strings.ToLower(v)) {
			score += variationMatchScore
		}
	}
	return score
}

// normalizeKey lowercases and collapses whitespace for map lookups.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}
