package typesense

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/blackscan/backend/internal/domain"
)

// Search field weighting: product names and types matter most, company
// second, tags last. Matches the catalog collection's indexed fields.
const (
	searchQueryBy        = "name,company,product_type,tags"
	searchQueryByWeights = "4,2,3,1"
	defaultPerPage       = 20
	maxPerPage           = 50
)

// Client queries the Typesense product catalog. Implements
// domain.SearchClient.
type Client struct {
	httpClient *http.Client
	host       string
	apiKey     string
	collection string
	debug      bool
}

// NewClient creates a Typesense search client.
func NewClient(host, apiKey, collection string) *Client {
	if collection == "" {
		collection = "products"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		host:       strings.TrimRight(host, "/"),
		apiKey:     apiKey,
		collection: collection,
	}
}

// SetDebug enables query logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// searchResponse is the wire shape of a Typesense document search.
type searchResponse struct {
	Found int `json:"found"`
	Hits  []struct {
		Document candidateDocument `json:"document"`
	} `json:"hits"`
}

// SearchProducts runs a weighted multi-field query, optionally scoped to a
// category facet, and maps the hits to domain candidates.
func (c *Client) SearchProducts(ctx context.Context, query domain.SearchQuery) ([]domain.Candidate, error) {
	if strings.TrimSpace(query.Text) == "" {
		return nil, domain.ErrInvalidRequest
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPerPage
	}
	if limit > maxPerPage {
		limit = maxPerPage
	}

	params := url.Values{}
	params.Set("q", query.Text)
	params.Set("query_by", searchQueryBy)
	params.Set("query_by_weights", searchQueryByWeights)
	params.Set("per_page", strconv.Itoa(limit))
	if query.Category != "" {
		params.Set("filter_by", "main_category:="+query.Category)
	}

	reqURL := fmt.Sprintf("%s/collections/%s/documents/search?%s", c.host, c.collection, params.Encode())
	if c.debug {
		log.Printf("[SEARCH] q=%q category=%q limit=%d", query.Text, query.Category, limit)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-TYPESENSE-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailure, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchFailure, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrSearchFailure, err)
	}

	candidates := make([]domain.Candidate, 0, len(parsed.Hits))
	for _, hit := range parsed.Hits {
		candidates = append(candidates, hit.Document.toCandidate())
	}
	if c.debug {
		log.Printf("[SEARCH] found=%d returned=%d", parsed.Found, len(candidates))
	}
	return candidates, nil
}
