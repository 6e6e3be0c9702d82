package domain

import "time"

// RawAnalysis is the recognition oracle's output before any taxonomy
// correction has been applied. Every field except RawText may be empty or
// wrong - the classifier treats this as untrusted input.
type RawAnalysis struct {
	Brand       string   `json:"brand,omitempty"`
	ProductType string   `json:"product_type"`
	Form        string   `json:"form,omitempty"`
	Size        string   `json:"size,omitempty"`
	Ingredients []string `json:"ingredients"`
	Confidence  float64  `json:"confidence"`
	RawText     string   `json:"raw_text"`
}

// FormSource records how a dispensing form was determined.
type FormSource string

const (
	FormSourceExplicit FormSource = "explicit"
	FormSourceInferred FormSource = "inferred"
	FormSourceUnknown  FormSource = "unknown"
)

// TypeMatch is the classified product type with its taxonomy placement.
type TypeMatch struct {
	Type        string  `json:"type"`
	Confidence  float64 `json:"confidence"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
}

// FormMatch is the classified dispensing form.
type FormMatch struct {
	Form       string     `json:"form"`
	Confidence float64    `json:"confidence"`
	Source     FormSource `json:"source"`
}

// BrandMatch is a brand detected in the scanned text.
type BrandMatch struct {
	Name        string   `json:"name"`
	Positioning string   `json:"positioning"` // e.g. "clinical", "natural", "luxury"
	Categories  []string `json:"categories"`
	Confidence  float64  `json:"confidence"`
}

// SizeMatch is a parsed product size.
type SizeMatch struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	Confidence float64 `json:"confidence"`
}

// ScanClassification is the structured result of classifying one scan.
// Built once per scan and never mutated afterwards; corrections produce a
// new value.
type ScanClassification struct {
	ProductType       TypeMatch   `json:"productType"`
	Form              *FormMatch  `json:"form,omitempty"`
	Brand             *BrandMatch `json:"brand,omitempty"`
	Ingredients       []string    `json:"ingredients"`
	IngredientClarity float64     `json:"ingredientClarity"`
	Size              *SizeMatch  `json:"size,omitempty"`
	RawText           string      `json:"rawText"`
	NormalizedText    string      `json:"normalizedText"`
	ClassifiedAt      time.Time   `json:"classifiedAt"`
}

// RecognitionMethod identifies which recognition tier produced a result.
type RecognitionMethod string

const (
	MethodTextModel   RecognitionMethod = "text-model"
	MethodVisionModel RecognitionMethod = "vision-model"
)

// OCRInput is the on-device OCR capture handed to the orchestrator.
type OCRInput struct {
	Text         string  `json:"text"`
	QualityScore float64 `json:"qualityScore"` // 0-1, OCR engine self-report
	WordCount    int     `json:"wordCount"`
}

// ScanRequest carries one scan through the recognition pipeline. At least
// one of Image or OCR must be present.
type ScanRequest struct {
	Image []byte    `json:"-"`
	OCR   *OCRInput `json:"ocr,omitempty"`
}

// RecognitionOutcome is the orchestrator's result: the analysis plus
// observability data. MethodUsed is always populated, including on vision
// fallback.
type RecognitionOutcome struct {
	Analysis     RawAnalysis       `json:"analysis"`
	MethodUsed   RecognitionMethod `json:"methodUsed"`
	CostEstimate float64           `json:"costEstimate"` // USD
	Elapsed      time.Duration     `json:"elapsed"`
}
