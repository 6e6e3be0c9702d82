package typesense

import "github.com/blackscan/backend/internal/domain"

// candidateDocument is one catalog document as stored in the collection.
// Kept separate from domain.Candidate so index schema drift stays contained
// in this package.
type candidateDocument struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Category    string   `json:"main_category"`
	ProductType string   `json:"product_type"`
	Form        string   `json:"form"`
	SetBundle   string   `json:"set_bundle"`
	Tags        []string `json:"tags"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	ProductURL  string   `json:"product_url"`
}

func (d candidateDocument) toCandidate() domain.Candidate {
	return domain.Candidate{
		ID:          d.ID,
		Name:        d.Name,
		Company:     d.Company,
		Category:    d.Category,
		ProductType: d.ProductType,
		Form:        d.Form,
		Tags:        d.Tags,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
		ProductURL:  d.ProductURL,
	}
}
