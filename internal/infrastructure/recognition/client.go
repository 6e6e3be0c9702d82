package recognition

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/blackscan/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Default retry policy for model calls
const (
	defaultMaxAttempts = 3
	defaultBaseBackoff = 500 * time.Millisecond
	defaultMaxBackoff  = 5 * time.Second
	defaultTimeout     = 30 * time.Second
)

// Config holds the recognition oracle connection settings.
type Config struct {
	BaseURL     string
	APIKey      string
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	Timeout     time.Duration
	// RequestsPerMinute bounds outgoing calls across both endpoints
	RequestsPerMinute int
}

// Client calls the external recognition oracle over HTTP. It implements
// domain.RecognitionClient with bounded retries, exponential backoff with
// jitter, and transient/permanent error classification.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	maxAttempts int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a recognition client, applying defaults for unset
// retry settings.
func NewClient(config Config) *Client {
	maxAttempts := config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	baseBackoff := config.BaseBackoff
	if baseBackoff <= 0 {
		baseBackoff = defaultBaseBackoff
	}
	maxBackoff := config.MaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	rpm := config.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		apiKey:      config.APIKey,
		maxAttempts: maxAttempts,
		baseBackoff: baseBackoff,
		maxBackoff:  maxBackoff,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 5),
	}
}

// SetDebug enables request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// AnalyzeText runs the cheap text-model path over OCR output.
func (c *Client) AnalyzeText(ctx context.Context, ocrText string) (*domain.RawAnalysis, error) {
	payload := map[string]string{"text": ocrText}
	return c.analyze(ctx, "/v1/analyze/text", payload)
}

// AnalyzeImage runs the expensive vision-model path over raw image bytes.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte) (*domain.RawAnalysis, error) {
	payload := map[string]string{"image": base64.StdEncoding.EncodeToString(image)}
	return c.analyze(ctx, "/v1/analyze/image", payload)
}

// analyze posts the payload with the retry policy: transient failures
// (timeouts, connection loss, DNS, 5xx, 429) are retried with capped
// exponential backoff and jitter; everything else fails immediately.
func (c *Client) analyze(ctx context.Context, endpoint string, payload map[string]string) (*domain.RawAnalysis, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	reqURL := c.baseURL + endpoint

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		analysis, err := c.doAnalyze(ctx, reqURL, body)
		if err == nil {
			return analysis, nil
		}
		lastErr = err

		if !isRetryable(err) {
			if c.debug {
				log.Printf("[RECOGNITION] %s failed permanently: %v", endpoint, err)
			}
			return nil, err
		}
		if c.debug {
			log.Printf("[RECOGNITION] %s attempt %d/%d failed: %v", endpoint, attempt, c.maxAttempts, err)
		}
		if attempt < c.maxAttempts {
			if err := sleepContext(ctx, backoffWithJitter(attempt, c.baseBackoff, c.maxBackoff)); err != nil {
				return nil, err
			}
		}
	}
	return nil, lastErr
}

// doAnalyze executes one request/decode cycle.
func (c *Client) doAnalyze(ctx context.Context, reqURL string, body []byte) (*domain.RawAnalysis, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "BlackScan/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: truncate(string(respBody), 200)}
	}

	var analysis domain.RawAnalysis
	if err := json.Unmarshal(respBody, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAnalysis, err)
	}
	if analysis.ProductType == "" && analysis.RawText == "" {
		return nil, fmt.Errorf("%w: empty analysis body", domain.ErrMalformedAnalysis)
	}
	if analysis.Confidence < 0 {
		analysis.Confidence = 0
	}
	if analysis.Confidence > 1 {
		analysis.Confidence = 1
	}
	return &analysis, nil
}

// backoffWithJitter grows the delay exponentially with the attempt number,
// caps it, and randomizes the upper half to avoid thundering herds.
func backoffWithJitter(attempt int, base, max time.Duration) time.Duration {
	delay := base << (attempt - 1)
	if delay > max {
		delay = max
	}
	half := delay / 2
	return half + time.Duration(rand.Int63n(int64(half)+1))
}

// sleepContext waits for the delay unless the context is cancelled first.
func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
