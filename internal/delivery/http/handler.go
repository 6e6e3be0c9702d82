package http

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blackscan/backend/internal/domain"
	"github.com/blackscan/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	scans *usecase.ScanService
}

// NewHandler creates a new HTTP handler
func NewHandler(scans *usecase.ScanService) *Handler {
	return &Handler{scans: scans}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "blackscan-backend",
		"version": "1.0.0",
	})
}

// classifyRequest accepts either a pre-built recognition analysis or bare
// scanned text.
type classifyRequest struct {
	Analysis *domain.RawAnalysis `json:"analysis,omitempty"`
	Text     string              `json:"text,omitempty"`
}

// Classify handles POST /api/v1/scan/classify
func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		classification *domain.ScanClassification
		err            error
	)
	switch {
	case req.Analysis != nil:
		classification, err = h.scans.Classify(req.Analysis)
	case req.Text != "":
		classification, err = h.scans.ClassifyText(req.Text)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either analysis or text is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classification)
}

// alternativesRequest is one scan submission. ImageBase64 and OCR are both
// optional but at least one must be present.
type alternativesRequest struct {
	ImageBase64 string           `json:"image,omitempty"`
	OCR         *domain.OCRInput `json:"ocr,omitempty"`
}

// FindAlternatives handles POST /api/v1/scan/alternatives
func (h *Handler) FindAlternatives(c *gin.Context) {
	var req alternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	scanReq := domain.ScanRequest{OCR: req.OCR}
	if req.ImageBase64 != "" {
		image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image must be base64-encoded"})
			return
		}
		scanReq.Image = image
	}

	result, err := h.scans.FindAlternatives(c.Request.Context(), scanReq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// scoreRequest scores caller-supplied candidates against a classification,
// for clients that query the catalog themselves.
type scoreRequest struct {
	Classification *domain.ScanClassification `json:"classification" binding:"required"`
	Candidates     []domain.Candidate         `json:"candidates" binding:"required"`
}

// ScoreCandidates handles POST /api/v1/scan/score
func (h *Handler) ScoreCandidates(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	scored := h.scans.GateAndScore(req.Candidates, req.Classification)
	c.JSON(http.StatusOK, gin.H{"results": scored})
}

// respondError maps domain errors to HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRecognitionFailed), errors.Is(err, domain.ErrSearchFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
