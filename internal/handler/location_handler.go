package handler

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/middleware"
	"github.com/openlot/openlot-backend-go/internal/service"
	"github.com/openlot/openlot-backend-go/pkg/response"
)

// LocationHandler handles HTTP requests for the map path
type LocationHandler struct {
	service *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service *service.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// List returns every location feature in dataset order
// GET /api/v1/locations
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.service.List()
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"locations": locations,
		"count":     len(locations),
	})
}

// Resolve handles the deep-link entry point. Absent or non-numeric lat/lng
// means no deep link was requested, which is a success with resolved=false,
// not an error. A hit runs the same selection path a map click does and
// returns the panel.
// GET /api/v1/locations/resolve?lat=43.0761&lng=-89.3899&id=lot-12
func (h *LocationHandler) Resolve(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionKey)
	locationID := c.Query("id")

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if locationID == "" && (latErr != nil || lngErr != nil) {
		response.Success(c, gin.H{"resolved": false})
		return
	}
	if latErr != nil || lngErr != nil {
		// Id-only link: NaN coordinates can never pass tolerance matching.
		lat, lng = math.NaN(), math.NaN()
	}

	panel, err := h.service.ResolveDeepLink(sessionID, locationID, lat, lng)
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	if panel == nil {
		response.Success(c, gin.H{"resolved": false})
		return
	}

	response.Success(c, gin.H{
		"resolved": true,
		"panel":    panel,
	})
}

// Nearest returns the closest location to the given point
// GET /api/v1/locations/nearest?lat=43.0761&lng=-89.3899
func (h *LocationHandler) Nearest(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		response.BadRequest(c, "lat and lng must be numeric")
		return
	}

	loc, dist, err := h.service.Nearest(lat, lng)
	if err != nil {
		if errors.Is(err, dataset.ErrDataUnavailable) {
			response.ServiceUnavailable(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	if loc == nil {
		response.NotFound(c, "No locations in dataset")
		return
	}

	response.Success(c, gin.H{
		"location":        loc,
		"distance_meters": dist,
	})
}
