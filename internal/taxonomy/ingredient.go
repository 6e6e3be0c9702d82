package taxonomy

import "strings"

// DetectIngredients scans text for known marketed ingredients. All matches
// are collected into a deduplicated set of canonical names; the longest
// name/variation hit establishes the match, so "shea butter" is reported
// over a bare "shea".
func (r *Registry) DetectIngredients(text string) []string {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	var found []string
	seen := make(map[string]bool)
	for _, ing := range r.ingredientOrder {
		if seen[ing.Name] {
			continue
		}
		if ingredientMentionIndex(lower, ing) >= 0 {
			seen[ing.Name] = true
			found = append(found, ing.Name)
		}
	}
	return found
}

// ingredientMentionIndex returns the earliest index at which the ingredient
// (any name/variation) is mentioned, or -1.
func ingredientMentionIndex(lowerText string, ing *IngredientEntry) int {
	earliest := -1
	if idx := strings.Index(lowerText, strings.ToLower(ing.Name)); idx >= 0 {
		earliest = idx
	}
	for _, v := range ing.Variations {
		if idx := strings.Index(lowerText, strings.ToLower(v)); idx >= 0 && (earliest < 0 || idx < earliest) {
			earliest = idx
		}
	}
	return earliest
}

// ClarityScore measures how cleanly the text separates ingredients from the
// product's identity. 1.0 when no ingredients are mentioned at all. With a
// specific (non-generic) product type, ingredient mentions appearing before
// the type mention read as modifiers of a clear head noun ("Shea Butter
// Body Lotion") and score 0.9; mixed ordering scores 0.7. Without a
// specific type, heavy ingredient lists (3+) score 0.5 and light ones 0.7.
func (r *Registry) ClarityScore(text, productType string) float64 {
	lower := strings.ToLower(text)

	var mentions []int
	for _, ing := range r.ingredientOrder {
		if idx := ingredientMentionIndex(lower, ing); idx >= 0 {
			mentions = append(mentions, idx)
		}
	}
	if len(mentions) == 0 {
		return 1.0
	}

	entry, known := r.Entry(productType)
	if known && !entry.Generic {
		typeIdx := r.typeMentionIndex(lower, entry)
		if typeIdx >= 0 {
			allBefore := true
			for _, m := range mentions {
				if m >= typeIdx {
					allBefore = false
					break
				}
			}
			if allBefore {
				return 0.9
			}
		}
		return 0.7
	}

	switch {
	case len(mentions) >= 3:
		return 0.5
	case len(mentions) >= 1:
		return 0.7
	default:
		return 0.5
	}
}

// typeMentionIndex returns the earliest index of the type's canonical name
// or any variation in the text, or -1.
func (r *Registry) typeMentionIndex(lowerText string, entry *ProductTypeEntry) int {
	earliest := -1
	if idx := strings.Index(lowerText, strings.ToLower(entry.Canonical)); idx >= 0 {
		earliest = idx
	}
	for _, v := range entry.Variations {
		if idx := strings.Index(lowerText, strings.ToLower(v)); idx >= 0 && (earliest < 0 || idx < earliest) {
			earliest = idx
		}
	}
	return earliest
}
