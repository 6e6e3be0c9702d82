package taxonomy

import (
	"regexp"
	"strconv"
)

// Size units recognized by the parser
const (
	UnitFluidOunce = "fl oz"
	UnitMilliliter = "ml"
	UnitGram       = "g"
	UnitPound      = "lb"
	UnitLiter      = "l"
	UnitOunce      = "oz"
	UnitCount      = "count"
)

const sizeExtractionConfidence = 0.9

// sizePattern pairs a unit with its extraction regex. Patterns are tried in
// priority order and the first match wins, so "fl oz" must precede "oz".
type sizePattern struct {
	unit string
	re   *regexp.Regexp
}

var sizePatterns = []sizePattern{
	{UnitFluidOunce, regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:fl\.?\s*oz|fluid\s+ounces?)\b`)},
	{UnitMilliliter, regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:ml|milliliters?|millilitres?)\b`)},
	{UnitGram, regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:g|grams?)\b`)},
	{UnitPound, regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:lbs?|pounds?)\b`)},
	{UnitLiter, regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:l|liters?|litres?)\b`)},
	{UnitOunce, regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:oz|ounces?)\b`)},
	{UnitCount, regexp.MustCompile(`(?i)\b(\d+)\s*(?:count|ct|pack|pcs?|pieces?)\b`)},
}

// ParsedSize is a size extracted from free text.
type ParsedSize struct {
	Value      float64
	Unit       string
	Confidence float64
}

// SizeParser extracts product sizes from label text and scores size
// compatibility between two products. Stateless and safe for concurrent use.
type SizeParser struct{}

// NewSizeParser creates a size parser.
func NewSizeParser() *SizeParser {
	return &SizeParser{}
}

// ExtractSize finds the first size mention in the text, trying unit
// patterns in priority order.
func (p *SizeParser) ExtractSize(text string) (*ParsedSize, bool) {
	for _, sp := range sizePatterns {
		m := sp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || value <= 0 {
			continue
		}
		return &ParsedSize{Value: value, Unit: sp.unit, Confidence: sizeExtractionConfidence}, true
	}
	return nil, false
}

// mlPerUnit converts each unit to a milliliter-equivalent base. Solids use a
// mass-as-volume approximation (1 g ~ 1 ml); a bare label "oz" is ambiguous
// between weight and fluid ounces and converts at the fluid-ounce rate so
// same-unit comparisons stay exact. Count sizes have no volume equivalent.
var mlPerUnit = map[string]float64{
	UnitFluidOunce: 29.5735,
	UnitMilliliter: 1.0,
	UnitGram:       1.0,
	UnitPound:      473.176, // 16 oz at the fluid-ounce rate
	UnitLiter:      1000.0,
	UnitOunce:      29.5735,
}

// baseValue returns the milliliter-equivalent of a size, or false when the
// unit has no volume base (count).
func baseValue(s *ParsedSize) (float64, bool) {
	factor, ok := mlPerUnit[s.Unit]
	if !ok {
		return 0, false
	}
	return s.Value * factor, true
}

// ScoreCompatibility rates how close two sizes are. Missing either size
// yields the neutral 0.5, as does comparing a count size against a
// volume/weight size. Otherwise the score steps down as the max/min ratio
// of the milliliter-equivalent values grows.
func (p *SizeParser) ScoreCompatibility(a, b *ParsedSize) float64 {
	if a == nil || b == nil {
		return 0.5
	}

	baseA, okA := baseValue(a)
	baseB, okB := baseValue(b)
	if !okA || !okB {
		if a.Unit == UnitCount && b.Unit == UnitCount {
			baseA, baseB = a.Value, b.Value
		} else {
			return 0.5
		}
	}
	if baseA <= 0 || baseB <= 0 {
		return 0.5
	}

	ratio := baseA / baseB
	if ratio < 1 {
		ratio = 1 / ratio
	}

	switch {
	case ratio <= 1.1:
		return 1.0
	case ratio <= 1.25:
		return 0.9
	case ratio <= 1.5:
		return 0.7
	case ratio <= 2.0:
		return 0.5
	case ratio <= 3.0:
		return 0.3
	default:
		return 0.2
	}
}
