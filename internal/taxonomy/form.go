package taxonomy

import "strings"

// NormalizeForm resolves free text to a canonical form name.
func (r *Registry) NormalizeForm(input string) (string, bool) {
	key := normalizeKey(input)
	if key == "" {
		return "", false
	}
	if entry, ok := r.formsByKey[key]; ok {
		return entry.Canonical, true
	}
	return "", false
}

// AreFormsCompatible reports whether two forms are interchangeable: equal
// after canonicalization, or either lists the other among its compatible
// forms. Unknown forms are not compatible with anything except themselves.
func (r *Registry) AreFormsCompatible(f1, f2 string) bool {
	c1, ok1 := r.NormalizeForm(f1)
	c2, ok2 := r.NormalizeForm(f2)
	if !ok1 || !ok2 {
		return normalizeKey(f1) == normalizeKey(f2)
	}
	if c1 == c2 {
		return true
	}

	e1 := r.formsByKey[strings.ToLower(c1)]
	for _, cf := range e1.CompatibleForms {
		if cf == c2 {
			return true
		}
	}
	e2 := r.formsByKey[strings.ToLower(c2)]
	for _, cf := range e2.CompatibleForms {
		if cf == c1 {
			return true
		}
	}
	return false
}

// FormFamily returns the compatibility family of a form ("spray", "cream",
// "oil", ...). Returns false for unknown forms or forms without a family,
// which are never treated as blocking.
func (r *Registry) FormFamily(form string) (string, bool) {
	canonical, ok := r.NormalizeForm(form)
	if !ok {
		return "", false
	}
	entry := r.formsByKey[strings.ToLower(canonical)]
	if entry.Family == "" {
		return "", false
	}
	return entry.Family, true
}

// FormsConflict reports whether two forms belong to different known
// families. Either side being unknown (or family-less, e.g. "other") means
// no conflict.
func (r *Registry) FormsConflict(f1, f2 string) bool {
	fam1, ok1 := r.FormFamily(f1)
	fam2, ok2 := r.FormFamily(f2)
	if !ok1 || !ok2 {
		return false
	}
	return fam1 != fam2
}

// InferForm picks the first registered form whose keyword list intersects
// the combined product type + name text. Used when a scan carried no
// explicit form mention.
func (r *Registry) InferForm(productType, name string) (string, bool) {
	combined := strings.ToLower(productType + " " + name)
	for _, entry := range r.formOrder {
		for _, kw := range entry.Keywords {
			if kw != "" && strings.Contains(combined, strings.ToLower(kw)) {
				return entry.Canonical, true
			}
		}
	}
	return "", false
}

// ExtractForm scans the text for an explicitly mentioned dispensing form
// using the shared containment scoring scheme; confidence is
// min(score/4, 1.0).
func (r *Registry) ExtractForm(text string) (string, float64, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return "", 0, false
	}

	var best *FormEntry
	bestScore := 0.0
	for _, entry := range r.formOrder {
		if entry.Canonical == "other" {
			continue
		}
		score := scoreEntryAgainst(lower, entry.Canonical, entry.Variations, entry.Keywords)
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}

	if best == nil {
		return "", 0, false
	}
	confidence := bestScore / formScoreDivisor
	if confidence > 1.0 {
		confidence = 1.0
	}
	return best.Canonical, confidence, true
}

// TypicalFormsCompatible reports whether a form is compatible with any of a
// product type's typical forms. Types without typical forms never block.
func (r *Registry) TypicalFormsCompatible(entry *ProductTypeEntry, form string) bool {
	if entry == nil || len(entry.TypicalForms) == 0 || form == "" {
		return true
	}
	for _, tf := range entry.TypicalForms {
		if r.AreFormsCompatible(tf, form) || !r.FormsConflict(tf, form) {
			return true
		}
	}
	return false
}
