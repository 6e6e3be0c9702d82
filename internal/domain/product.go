package domain

// Candidate is a catalog document returned by the product search index.
// Fields are frequently generic or wrong (ProductType especially), which is
// why gating and name-based scoring exist downstream. Read-only here.
type Candidate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Category    string   `json:"main_category"`
	ProductType string   `json:"product_type"`
	Form        string   `json:"form,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url,omitempty"`
	ProductURL  string   `json:"product_url,omitempty"`
}

// ScoreBreakdown holds the per-tier scores behind a final confidence value.
// Every score lies in [0,1].
type ScoreBreakdown struct {
	ProductType       float64 `json:"productType"`
	Form              float64 `json:"form"`
	BrandCategory     float64 `json:"brandCategory"`
	IngredientClarity float64 `json:"ingredientClarity"`
	Size              float64 `json:"size"`
	Visual            float64 `json:"visual"`
	// CriteriaMatched counts tiers scoring at or above 0.7
	CriteriaMatched int `json:"criteriaMatched"`
}

// ScoredCandidate is a candidate that survived gating, with its final
// confidence and an explanation of how it was scored.
type ScoredCandidate struct {
	Candidate   Candidate      `json:"candidate"`
	Confidence  float64        `json:"confidence"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Explanation string         `json:"explanation"`
}

// AlternativesResult is the full pipeline output for one scan. An empty
// Alternatives list is a valid outcome ("no confident match found"), not
// an error.
type AlternativesResult struct {
	Classification *ScanClassification `json:"classification"`
	Alternatives   []ScoredCandidate   `json:"alternatives"`
	MethodUsed     RecognitionMethod   `json:"methodUsed,omitempty"`
	CostEstimate   float64             `json:"costEstimate,omitempty"`
	Source         string              `json:"source"` // "live" or "cache"
}
