package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blackscan/backend/internal/domain"
)

// OrchestratorConfig holds the gates and cost model for recognition
// escalation.
type OrchestratorConfig struct {
	// MinOCRQuality gates the cheap path: below this the OCR text is too
	// degraded to bother the text model with
	MinOCRQuality float64
	// MinOCRWords gates the cheap path on extracted word count
	MinOCRWords int
	// MinTextConfidence gates acceptance of the text-model result
	MinTextConfidence float64
	// TextModelCost / VisionModelCost estimate per-call spend in USD
	TextModelCost   float64
	VisionModelCost float64
	// EnableDebugLogging turns on per-decision logging
	EnableDebugLogging bool
}

// RecognitionOrchestrator escalates between the cheap (OCR + text model)
// and expensive (vision model) recognition paths under confidence
// thresholds. Retry and backoff for the individual model calls live in the
// recognition client.
type RecognitionOrchestrator struct {
	client            domain.RecognitionClient
	minOCRQuality     float64
	minOCRWords       int
	minTextConfidence float64
	textModelCost     float64
	visionModelCost   float64
	debug             bool
}

// NewRecognitionOrchestrator creates an orchestrator with the given gates,
// applying defaults for unset values.
func NewRecognitionOrchestrator(client domain.RecognitionClient, config OrchestratorConfig) *RecognitionOrchestrator {
	quality := config.MinOCRQuality
	if quality <= 0 {
		quality = 0.7
	}
	words := config.MinOCRWords
	if words <= 0 {
		words = 5
	}
	confidence := config.MinTextConfidence
	if confidence <= 0 {
		confidence = 0.7
	}
	textCost := config.TextModelCost
	if textCost <= 0 {
		textCost = 0.002
	}
	visionCost := config.VisionModelCost
	if visionCost <= 0 {
		visionCost = 0.015
	}

	return &RecognitionOrchestrator{
		client:            client,
		minOCRQuality:     quality,
		minOCRWords:       words,
		minTextConfidence: confidence,
		textModelCost:     textCost,
		visionModelCost:   visionCost,
		debug:             config.EnableDebugLogging,
	}
}

// Recognize runs one scan through the escalation state machine:
//
//	TryCheapOCR -> [quality gate] -> TryTextModel -> [confidence gate] -> done
//	                                                      |
//	                      (gate failed or error) -> TryVisionModel -> done
//
// Any error on the cheap path falls back to the vision model instead of
// propagating; only a vision-model failure surfaces to the caller.
func (o *RecognitionOrchestrator) Recognize(ctx context.Context, req domain.ScanRequest) (*domain.RecognitionOutcome, error) {
	if len(req.Image) == 0 && (req.OCR == nil || strings.TrimSpace(req.OCR.Text) == "") {
		return nil, domain.ErrInvalidRequest
	}
	start := time.Now()

	if o.passesQualityGate(req.OCR) {
		analysis, err := o.client.AnalyzeText(ctx, req.OCR.Text)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if o.debug {
				log.Printf("[RECOGNIZE] text model failed, falling back to vision: %v", err)
			}
		case analysis.Confidence >= o.minTextConfidence:
			return o.outcome(analysis, domain.MethodTextModel, o.textModelCost, start), nil
		default:
			if o.debug {
				log.Printf("[RECOGNIZE] text model confidence %.2f below %.2f, escalating",
					analysis.Confidence, o.minTextConfidence)
			}
			// No image to escalate to: a low-confidence text result still
			// beats failing the scan
			if len(req.Image) == 0 {
				return o.outcome(analysis, domain.MethodTextModel, o.textModelCost, start), nil
			}
		}
	} else if o.debug && req.OCR != nil {
		log.Printf("[RECOGNIZE] OCR quality gate failed (quality=%.2f, words=%d), skipping text model",
			req.OCR.QualityScore, ocrWordCount(req.OCR))
	}

	if len(req.Image) == 0 {
		return nil, fmt.Errorf("%w: text path exhausted and no image provided", domain.ErrRecognitionFailed)
	}

	analysis, err := o.client.AnalyzeImage(ctx, req.Image)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRecognitionFailed, err)
	}
	return o.outcome(analysis, domain.MethodVisionModel, o.visionModelCost, start), nil
}

// passesQualityGate decides whether the OCR capture is good enough for the
// cheap path.
func (o *RecognitionOrchestrator) passesQualityGate(ocr *domain.OCRInput) bool {
	if ocr == nil || strings.TrimSpace(ocr.Text) == "" {
		return false
	}
	return ocr.QualityScore >= o.minOCRQuality && ocrWordCount(ocr) >= o.minOCRWords
}

func ocrWordCount(ocr *domain.OCRInput) int {
	if ocr.WordCount > 0 {
		return ocr.WordCount
	}
	return len(strings.Fields(ocr.Text))
}

func (o *RecognitionOrchestrator) outcome(analysis *domain.RawAnalysis, method domain.RecognitionMethod, cost float64, start time.Time) *domain.RecognitionOutcome {
	if o.debug {
		log.Printf("[RECOGNIZE] method=%s cost=$%.4f elapsed=%s", method, cost, time.Since(start))
	}
	return &domain.RecognitionOutcome{
		Analysis:     *analysis,
		MethodUsed:   method,
		CostEstimate: cost,
		Elapsed:      time.Since(start),
	}
}
