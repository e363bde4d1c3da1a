package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/middleware"
	"github.com/openlot/openlot-backend-go/internal/service"
	"github.com/openlot/openlot-backend-go/pkg/response"
)

// SelectionHandler handles HTTP requests for the shared selection state
type SelectionHandler struct {
	service *service.LocationService
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(service *service.LocationService) *SelectionHandler {
	return &SelectionHandler{service: service}
}

type selectRequest struct {
	LocationID string `json:"location_id"`
}

// Select marks a location as selected (map click path) and returns the panel
// POST /api/v1/selection
func (h *SelectionHandler) Select(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)

	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LocationID == "" {
		response.BadRequest(c, "location_id is required")
		return
	}

	panel, err := h.service.SelectByID(sessionID, req.LocationID)
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, gin.H{"panel": panel})
}

// Deselect clears the selection (popup closed); the panel goes hidden
// DELETE /api/v1/selection
func (h *SelectionHandler) Deselect(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)
	panel := h.service.Deselect(sessionID)
	response.Success(c, gin.H{"panel": panel})
}

// Get returns the session's current panel view
// GET /api/v1/selection
func (h *SelectionHandler) Get(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)
	panel := h.service.Panel(sessionID)
	response.Success(c, gin.H{"panel": panel})
}
