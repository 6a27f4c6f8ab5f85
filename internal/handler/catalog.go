package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jasakreatif/storefront-service/internal/service"
)

type CatalogHandler struct {
	svc service.CatalogServicer
}

func NewCatalogHandler(svc service.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List returns the catalog grouped by service_type, ascending. An empty
// catalog is a 200 with no groups; only a store failure is a 500.
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	groups := service.GroupServicesByType(items)
	if groups == nil {
		groups = []service.ServiceGroup{}
	}
	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"total":  len(items),
	})
}
