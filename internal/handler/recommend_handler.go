package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/models"
	"github.com/openlot/openlot-backend-go/internal/service"
	"github.com/openlot/openlot-backend-go/pkg/response"
)

// RecommendHandler handles HTTP requests for the free-text recommendation path
type RecommendHandler struct {
	service *service.RecommendationService
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(service *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{service: service}
}

type recommendRequest struct {
	Query string `json:"query"`
}

// Recommend classifies a business idea and returns the top locations for it
// POST /api/v1/recommendations
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Empty queries are rejected before the core runs.
	if strings.TrimSpace(req.Query) == "" {
		response.BadRequest(c, "Query must not be empty")
		return
	}

	result, ranked, err := h.service.Recommend(req.Query)
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"category": result.Category,
		"keyword":  result.Keyword,
		"outcome":  result.Outcome,
		"results":  ranked,
	})
}

// RankByCategory returns the top locations for an explicit category
// GET /api/v1/recommendations?category=coffee+shop
func (h *RecommendHandler) RankByCategory(c *gin.Context) {
	category := models.Category(c.Query("category"))
	if !knownCategory(category) {
		response.BadRequest(c, "Unknown category")
		return
	}

	ranked, err := h.service.RankForCategory(category)
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"category": category,
		"results":  ranked,
	})
}

// Categories lists every category with its keywords, priority order
// GET /api/v1/categories
func (h *RecommendHandler) Categories(c *gin.Context) {
	type entry struct {
		Category models.Category `json:"category"`
		Keywords []string        `json:"keywords"`
	}

	entries := make([]entry, 0, len(models.KeywordTable)+1)
	for _, e := range models.KeywordTable {
		entries = append(entries, entry{Category: e.Category, Keywords: e.Keywords})
	}
	entries = append(entries, entry{Category: models.CategoryGeneral, Keywords: []string{}})

	response.Success(c, gin.H{"categories": entries})
}

func knownCategory(category models.Category) bool {
	for _, c := range models.Categories() {
		if c == category {
			return true
		}
	}
	return false
}
