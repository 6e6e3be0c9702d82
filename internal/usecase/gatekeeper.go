package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/taxonomy"
)

// Package-level compiled regex pattern for tokenization
var punctuationRegex = regexp.MustCompile(`[^\w\s]`)

// accessoryKeywords mark tools and containers that are never valid
// alternatives to a consumable product.
var accessoryKeywords = map[string]bool{
	"brush": true, "applicator": true, "sponge": true, "tool": true,
	"mirror": true, "bag": true, "case": true, "holder": true,
	"dispenser": true, "blender": true,
}

// useCaseGroups classify a product's use case from keywords in its name or
// type text.
var useCaseGroups = map[string][]string{
	"feminine":    {"feminine", "yoni", "intimate", "vaginal", "menstrual"},
	"shampoo":     {"shampoo"},
	"conditioner": {"conditioner"},
	"facial":      {"facial", "face"},
	"body":        {"body"},
	"hand":        {"hand"},
}

// conflictingUseCases lists cross-use-case pairs that disqualify a
// candidate outright.
var conflictingUseCases = [][2]string{
	{"hand", "feminine"},
	{"facial", "feminine"},
	{"body", "feminine"},
	{"shampoo", "conditioner"},
	{"body", "facial"},
}

// specificWords are product descriptors precise enough to identify what a
// thing actually is; sharing one with the scan is strong evidence.
var specificWords = map[string]bool{
	"sanitizer": true, "cleanser": true, "wash": true, "soap": true,
	"shampoo": true, "conditioner": true, "lotion": true, "cream": true,
	"serum": true, "oil": true, "gel": true, "balm": true, "butter": true,
	"mask": true, "scrub": true, "toner": true, "primer": true,
	"foundation": true, "powder": true, "spray": true, "foam": true,
	"bar": true, "wipe": true, "towelette": true,
}

// gateStopWords are dropped before token comparison.
var gateStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "to": true, "for": true,
	"with": true, "by": true, "from": true,
	"oz": true, "fl": true, "ml": true, "lb": true, "lbs": true,
	"count": true, "ct": true, "pack": true,
}

// Name-specificity scores per spec'd match quality
const (
	nameScoreFullPhrase      = 1.00
	nameScoreMultiSpecific   = 0.95
	nameScoreSpecificCovered = 0.70
	nameScoreOneSpecific     = 0.55
	nameScoreMultiGeneric    = 0.40
	nameScoreOneGeneric      = 0.30
	nameScoreTagOnly         = 0.25
)

// Gatekeeper filters raw candidates through four independent rejection
// gates before scoring. A failed gate drops the candidate entirely.
type Gatekeeper struct {
	registry *taxonomy.Registry
	debug    bool
}

// NewGatekeeper creates a gatekeeper over the given registry.
func NewGatekeeper(registry *taxonomy.Registry, debug bool) *Gatekeeper {
	return &Gatekeeper{registry: registry, debug: debug}
}

// Filter returns the candidates that pass every gate. Rejections are silent
// drops; an empty result is a valid outcome.
func (g *Gatekeeper) Filter(candidates []domain.Candidate, classification *domain.ScanClassification) []domain.Candidate {
	if classification == nil {
		return nil
	}

	kept := make([]domain.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if reason, rejected := g.reject(&candidate, classification); rejected {
			if g.debug {
				log.Printf("[GATE] dropped %q: %s", candidate.Name, reason)
			}
			continue
		}
		kept = append(kept, candidate)
	}
	return kept
}

// reject runs all gates in order and reports the first failure.
func (g *Gatekeeper) reject(candidate *domain.Candidate, classification *domain.ScanClassification) (string, bool) {
	if g.failsAccessoryGate(candidate, classification) {
		return "accessory", true
	}
	if g.failsUseCaseGate(candidate, classification) {
		return "use-case mismatch", true
	}
	if g.failsFormGate(candidate, classification) {
		return "form mismatch", true
	}
	if NameSpecificityScore(classification.ProductType.Type, candidate) <= 0 {
		return "no name overlap", true
	}
	return "", false
}

// failsAccessoryGate rejects tool/accessory candidates when the scanned
// product is a consumable.
func (g *Gatekeeper) failsAccessoryGate(candidate *domain.Candidate, classification *domain.ScanClassification) bool {
	if entry, ok := g.registry.Entry(classification.ProductType.Type); ok && entry.Accessory {
		return false // scanning an accessory: accessories are fair matches
	}
	for _, token := range tokenizeName(candidate.Name) {
		if accessoryKeywords[token] {
			return true
		}
	}
	return false
}

// failsUseCaseGate rejects cross-use-case candidates via the explicit
// conflict table. Sharing any use-case group clears the gate.
func (g *Gatekeeper) failsUseCaseGate(candidate *domain.Candidate, classification *domain.ScanClassification) bool {
	scanGroups := useCasesOf(classification.ProductType.Type + " " + classification.RawText)
	candidateGroups := useCasesOf(candidate.Name + " " + candidate.ProductType)
	if len(scanGroups) == 0 || len(candidateGroups) == 0 {
		return false
	}

	for group := range scanGroups {
		if candidateGroups[group] {
			return false
		}
	}
	for _, pair := range conflictingUseCases {
		if (scanGroups[pair[0]] && candidateGroups[pair[1]]) ||
			(scanGroups[pair[1]] && candidateGroups[pair[0]]) {
			return true
		}
	}
	return false
}

// failsFormGate rejects candidates whose dispensing form belongs to a
// different compatibility family than the scanned form. Unknown forms never
// block.
func (g *Gatekeeper) failsFormGate(candidate *domain.Candidate, classification *domain.ScanClassification) bool {
	if classification.Form == nil {
		return false
	}
	candidateForm := g.candidateForm(candidate)
	if candidateForm == "" {
		return false
	}
	return g.registry.FormsConflict(classification.Form.Form, candidateForm)
}

// candidateForm resolves a candidate's form from its catalog field, falling
// back to extraction from the name.
func (g *Gatekeeper) candidateForm(candidate *domain.Candidate) string {
	if candidate.Form != "" {
		if canonical, ok := g.registry.NormalizeForm(candidate.Form); ok {
			return canonical
		}
	}
	if form, _, ok := g.registry.ExtractForm(candidate.Name); ok {
		return form
	}
	return ""
}

// NameSpecificityScore scores how specifically a candidate's name matches
// the scanned product type. Zero means no overlap at all and the candidate
// must be dropped.
func NameSpecificityScore(scannedType string, candidate *domain.Candidate) float64 {
	typeTokens := tokenizeName(scannedType)
	if len(typeTokens) == 0 {
		return nameScoreOneGeneric
	}

	nameLower := strings.ToLower(candidate.Name)
	if strings.Contains(nameLower, strings.ToLower(strings.TrimSpace(scannedType))) {
		return nameScoreFullPhrase
	}

	nameTokens := tokenSet(tokenizeName(candidate.Name))

	specificMatches := 0
	genericMatches := 0
	for _, token := range typeTokens {
		if !nameTokens[token] {
			continue
		}
		if specificWords[token] {
			specificMatches++
		} else {
			genericMatches++
		}
	}

	switch {
	case specificMatches >= 2:
		return nameScoreMultiSpecific
	case specificMatches == 1 && genericMatches*2 >= len(typeTokens)-1 && len(typeTokens) > 1:
		return nameScoreSpecificCovered
	case specificMatches == 1:
		return nameScoreOneSpecific
	case genericMatches >= 2:
		return nameScoreMultiGeneric
	case genericMatches == 1:
		return nameScoreOneGeneric
	}

	// Last resort: a type token appearing only in the candidate's tags
	for _, tag := range candidate.Tags {
		tagTokens := tokenSet(tokenizeName(tag))
		for _, token := range typeTokens {
			if tagTokens[token] {
				return nameScoreTagOnly
			}
		}
	}
	return 0
}

// useCasesOf returns the set of use-case groups whose keywords appear as
// whole words in the text.
func useCasesOf(text string) map[string]bool {
	tokens := tokenSet(tokenizeName(text))
	groups := make(map[string]bool)
	for group, keywords := range useCaseGroups {
		for _, kw := range keywords {
			if tokens[kw] {
				groups[group] = true
				break
			}
		}
	}
	return groups
}

// tokenizeName splits text into lowercase tokens, dropping punctuation,
// stop words and bare numbers.
func tokenizeName(s string) []string {
	cleaned := punctuationRegex.ReplaceAllString(strings.ToLower(s), " ")
	words := strings.Fields(cleaned)

	var tokens []string
	for _, word := range words {
		if len(word) <= 1 || gateStopWords[word] || isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
