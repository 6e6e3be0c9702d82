package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/blackscan/backend/internal/domain"
)

// fakeRecognitionClient counts calls and returns scripted results.
type fakeRecognitionClient struct {
	textResult  *domain.RawAnalysis
	textErr     error
	imageResult *domain.RawAnalysis
	imageErr    error

	textCalls  int
	imageCalls int
}

func (f *fakeRecognitionClient) AnalyzeText(ctx context.Context, ocrText string) (*domain.RawAnalysis, error) {
	f.textCalls++
	return f.textResult, f.textErr
}

func (f *fakeRecognitionClient) AnalyzeImage(ctx context.Context, image []byte) (*domain.RawAnalysis, error) {
	f.imageCalls++
	return f.imageResult, f.imageErr
}

func goodOCR(text string) *domain.OCRInput {
	return &domain.OCRInput{Text: text, QualityScore: 0.9, WordCount: 7}
}

func TestRecognize(t *testing.T) {
	ctx := context.Background()

	t.Run("confident text result stops at the cheap path", func(t *testing.T) {
		client := &fakeRecognitionClient{
			textResult: &domain.RawAnalysis{ProductType: "shampoo", Confidence: 0.9, RawText: "moisture shampoo"},
		}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		outcome, err := o.Recognize(ctx, domain.ScanRequest{
			Image: []byte("jpeg-bytes"),
			OCR:   goodOCR("moisture shampoo for dry curly hair"),
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		if outcome.MethodUsed != domain.MethodTextModel {
			t.Errorf("MethodUsed = %q, want text-model", outcome.MethodUsed)
		}
		if outcome.CostEstimate != 0.002 {
			t.Errorf("CostEstimate = %v, want default text cost", outcome.CostEstimate)
		}
		if client.textCalls != 1 || client.imageCalls != 0 {
			t.Errorf("calls = %d text, %d image; want 1, 0", client.textCalls, client.imageCalls)
		}
	})

	t.Run("low OCR quality skips the text model entirely", func(t *testing.T) {
		client := &fakeRecognitionClient{
			imageResult: &domain.RawAnalysis{ProductType: "shampoo", Confidence: 0.8, RawText: "moisture shampoo"},
		}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		outcome, err := o.Recognize(ctx, domain.ScanRequest{
			Image: []byte("jpeg-bytes"),
			OCR:   &domain.OCRInput{Text: "m0istur shmp", QualityScore: 0.5, WordCount: 2},
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		if outcome.MethodUsed != domain.MethodVisionModel {
			t.Errorf("MethodUsed = %q, want vision-model", outcome.MethodUsed)
		}
		if outcome.CostEstimate != 0.015 {
			t.Errorf("CostEstimate = %v, want default vision cost", outcome.CostEstimate)
		}
		if client.textCalls != 0 {
			t.Errorf("text model called %d times on a failed quality gate", client.textCalls)
		}
		if client.imageCalls != 1 {
			t.Errorf("image calls = %d, want 1", client.imageCalls)
		}
	})

	t.Run("low text confidence escalates to vision", func(t *testing.T) {
		client := &fakeRecognitionClient{
			textResult:  &domain.RawAnalysis{ProductType: "lotion", Confidence: 0.4, RawText: "lotion?"},
			imageResult: &domain.RawAnalysis{ProductType: "body lotion", Confidence: 0.9, RawText: "shea body lotion"},
		}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		outcome, err := o.Recognize(ctx, domain.ScanRequest{
			Image: []byte("jpeg-bytes"),
			OCR:   goodOCR("some smudged label text here today"),
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		if outcome.MethodUsed != domain.MethodVisionModel {
			t.Errorf("MethodUsed = %q, want vision-model", outcome.MethodUsed)
		}
		if outcome.Analysis.ProductType != "body lotion" {
			t.Errorf("Analysis = %v, want the vision result", outcome.Analysis)
		}
		if client.textCalls != 1 || client.imageCalls != 1 {
			t.Errorf("calls = %d text, %d image; want 1, 1", client.textCalls, client.imageCalls)
		}
	})

	t.Run("text model error falls back to vision silently", func(t *testing.T) {
		client := &fakeRecognitionClient{
			textErr:     errors.New("upstream 503"),
			imageResult: &domain.RawAnalysis{ProductType: "shampoo", Confidence: 0.8, RawText: "shampoo"},
		}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		outcome, err := o.Recognize(ctx, domain.ScanRequest{
			Image: []byte("jpeg-bytes"),
			OCR:   goodOCR("moisture shampoo for dry curly hair"),
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		if outcome.MethodUsed != domain.MethodVisionModel {
			t.Errorf("MethodUsed = %q, want vision-model", outcome.MethodUsed)
		}
	})

	t.Run("low confidence text result kept when no image exists", func(t *testing.T) {
		client := &fakeRecognitionClient{
			textResult: &domain.RawAnalysis{ProductType: "lotion", Confidence: 0.4, RawText: "lotion?"},
		}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		outcome, err := o.Recognize(ctx, domain.ScanRequest{
			OCR: goodOCR("some smudged label text here today"),
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		if outcome.MethodUsed != domain.MethodTextModel {
			t.Errorf("MethodUsed = %q, want text-model", outcome.MethodUsed)
		}
		if outcome.Analysis.Confidence != 0.4 {
			t.Errorf("Confidence = %v, want the low-confidence result preserved", outcome.Analysis.Confidence)
		}
	})

	t.Run("text path exhausted with no image fails", func(t *testing.T) {
		client := &fakeRecognitionClient{textErr: errors.New("upstream 503")}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		_, err := o.Recognize(ctx, domain.ScanRequest{
			OCR: goodOCR("moisture shampoo for dry curly hair"),
		})
		if !errors.Is(err, domain.ErrRecognitionFailed) {
			t.Errorf("err = %v, want ErrRecognitionFailed", err)
		}
	})

	t.Run("vision model failure surfaces", func(t *testing.T) {
		client := &fakeRecognitionClient{imageErr: errors.New("upstream 500")}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		_, err := o.Recognize(ctx, domain.ScanRequest{Image: []byte("jpeg-bytes")})
		if !errors.Is(err, domain.ErrRecognitionFailed) {
			t.Errorf("err = %v, want ErrRecognitionFailed", err)
		}
	})

	t.Run("no input at all is invalid", func(t *testing.T) {
		client := &fakeRecognitionClient{}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		_, err := o.Recognize(ctx, domain.ScanRequest{})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("err = %v, want ErrInvalidRequest", err)
		}
		if client.textCalls != 0 || client.imageCalls != 0 {
			t.Error("no model should be called for an empty request")
		}
	})

	t.Run("cancelled context propagates", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		client := &fakeRecognitionClient{textErr: context.Canceled}
		o := NewRecognitionOrchestrator(client, OrchestratorConfig{})

		_, err := o.Recognize(cancelled, domain.ScanRequest{
			Image: []byte("jpeg-bytes"),
			OCR:   goodOCR("moisture shampoo for dry curly hair"),
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if client.imageCalls != 0 {
			t.Error("vision model must not run after cancellation")
		}
	})
}

func TestPassesQualityGate(t *testing.T) {
	o := NewRecognitionOrchestrator(&fakeRecognitionClient{}, OrchestratorConfig{})

	tests := []struct {
		name string
		ocr  *domain.OCRInput
		want bool
	}{
		{"good capture", &domain.OCRInput{Text: "a b c d e", QualityScore: 0.9, WordCount: 5}, true},
		{"quality below threshold", &domain.OCRInput{Text: "a b c d e", QualityScore: 0.5, WordCount: 5}, false},
		{"too few words", &domain.OCRInput{Text: "ab cd", QualityScore: 0.9, WordCount: 2}, false},
		{"word count falls back to field split", &domain.OCRInput{Text: "one two three four five six", QualityScore: 0.9}, true},
		{"blank text", &domain.OCRInput{Text: "   ", QualityScore: 0.9, WordCount: 9}, false},
		{"nil input", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.passesQualityGate(tt.ocr); got != tt.want {
				t.Errorf("passesQualityGate = %v, want %v", got, tt.want)
			}
		})
	}
}
