package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openlot/openlot-backend-go/internal/service"
	"github.com/openlot/openlot-backend-go/pkg/response"
)

// DatasetHandler handles admin dataset operations
type DatasetHandler struct {
	service *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// Reload drops the dataset cache so the next request re-reads the source
// POST /api/admin/dataset/reload
func (h *DatasetHandler) Reload(c *gin.Context) {
	h.service.Reload()
	response.Success(c, gin.H{"message": "Dataset cache dropped"})
}

// Import snapshots the GeoJSON dataset into sqlite
// POST /api/admin/dataset/import
func (h *DatasetHandler) Import(c *gin.Context) {
	count, err := h.service.Import()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"imported": count})
}
