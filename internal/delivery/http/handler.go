package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arbitragevault/backend/internal/domain"
	"github.com/arbitragevault/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis *usecase.AnalysisService
	searches *usecase.SavedSearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(analysis *usecase.AnalysisService, searches *usecase.SavedSearchService) *Handler {
	return &Handler{
		analysis: analysis,
		searches: searches,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "arbitragevault-backend",
		"version": "1.0.0",
	})
}

// analyzeRequest is the body of a manual batch analysis request.
type analyzeRequest struct {
	ASINs []string `json:"asins" binding:"required"`
}

// AnalyzeBatch handles POST /api/v1/analyses. The response includes both
// counts so the frontend can tell the user when some ASINs were dropped;
// this layer never synthesizes placeholder entries for them.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asins list is required"})
		return
	}

	products, err := h.analysis.AnalyzeBatch(c.Request.Context(), req.ASINs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":  products,
		"requested": len(req.ASINs),
		"analyzed":  len(products),
	})
}

// GetProductScore handles GET /api/v1/products/:asin/score
func (h *Handler) GetProductScore(c *gin.Context) {
	product, err := h.analysis.ScoreProduct(c.Request.Context(), c.Param("asin"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductPricing handles GET /api/v1/products/:asin/pricing. The
// per-condition record is forwarded as-is from the backend.
func (h *Handler) GetProductPricing(c *gin.Context) {
	pricing, err := h.analysis.PricingByCondition(c.Request.Context(), c.Param("asin"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pricing)
}

// DiscoverNiches handles GET /api/v1/niches/discover?q=...
func (h *Handler) DiscoverNiches(c *gin.Context) {
	products, err := h.analysis.DiscoverNiches(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AutosourcingPicks handles GET /api/v1/autosourcing/picks
func (h *Handler) AutosourcingPicks(c *gin.Context) {
	products, err := h.analysis.Autosource(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// saveSearchRequest is the body of a save-search request. Products arrive
// already normalized — the frontend posts back the list it rendered.
type saveSearchRequest struct {
	Name     string                      `json:"name" binding:"required"`
	Source   domain.Source               `json:"source" binding:"required"`
	Products []domain.DisplayableProduct `json:"products" binding:"required"`
}

// CreateSavedSearch handles POST /api/v1/searches
func (h *Handler) CreateSavedSearch(c *gin.Context) {
	uid := userUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	var req saveSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, source and products are required"})
		return
	}

	search, err := h.searches.Save(c.Request.Context(), uid, req.Name, req.Source, req.Products)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, search)
}

// ListSavedSearches handles GET /api/v1/searches
func (h *Handler) ListSavedSearches(c *gin.Context) {
	uid := userUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	searches, total, err := h.searches.List(c.Request.Context(), uid, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"searches": searches,
		"total":    total,
	})
}

// GetSavedSearch handles GET /api/v1/searches/:id
func (h *Handler) GetSavedSearch(c *gin.Context) {
	uid := userUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	search, err := h.searches.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, search)
}

// DeleteSavedSearch handles DELETE /api/v1/searches/:id
func (h *Handler) DeleteSavedSearch(c *gin.Context) {
	uid := userUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return
	}

	if err := h.searches.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrBackendFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis backend unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
