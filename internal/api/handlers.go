// Package api exposes the view model transformer over HTTP.
package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stablecoin-view/internal/viewmodel"
)

// Handler serves the transformer's read and write operations. The
// transformer itself is a single-writer state machine; the handler's mutex
// serializes concurrent HTTP callers around it.
type Handler struct {
	mu          sync.RWMutex
	transformer *viewmodel.Transformer
	logger      *zap.Logger
}

// NewHandler creates an API handler around a transformer.
func NewHandler(t *viewmodel.Transformer, logger *zap.Logger) *Handler {
	return &Handler{
		transformer: t,
		logger:      logger.Named("api"),
	}
}

// Refresh replaces the transformer state with a new batch.
// Used by the server's scheduled collection loop.
func (h *Handler) Refresh(batch []any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.transformer.TransformData(batch)
}

// GetViewModel handles GET /api/v1/view-model.
func (h *Handler) GetViewModel(c *gin.Context) {
	h.mu.RLock()
	bundle := h.transformer.CompleteViewModel()
	h.mu.RUnlock()
	c.JSON(http.StatusOK, bundle)
}

// GetAssets handles GET /api/v1/assets.
func (h *Handler) GetAssets(c *gin.Context) {
	h.mu.RLock()
	items := h.transformer.TransformedData()
	h.mu.RUnlock()
	c.JSON(http.StatusOK, items)
}

// GetPlatforms handles GET /api/v1/platforms.
func (h *Handler) GetPlatforms(c *gin.Context) {
	h.mu.RLock()
	platforms := h.transformer.CalculateAggregations()
	h.mu.RUnlock()
	c.JSON(http.StatusOK, platforms)
}

// PostTransform handles POST /api/v1/transform: the request body is a raw
// batch. A non-sequence body is not an error; per the pipeline's fail-soft
// contract it resets state, and the handler reports which happened.
func (h *Handler) PostTransform(c *gin.Context) {
	var raw any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is not valid JSON"})
		return
	}

	h.mu.Lock()
	h.transformer.TransformData(raw)
	accepted := h.transformer.ValidateInputData(raw)
	count := len(h.transformer.TransformedData())
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"accepted": accepted,
		"items":    count,
	})
}

// PostReset handles POST /api/v1/reset.
func (h *Handler) PostReset(c *gin.Context) {
	h.mu.Lock()
	h.transformer.Reset()
	h.mu.Unlock()
	c.Status(http.StatusNoContent)
}
