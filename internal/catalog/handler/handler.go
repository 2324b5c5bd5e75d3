package handler

import (
	"tcmshop_backend/internal/catalog/service"
	"tcmshop_backend/internal/catalog/transport"
	"tcmshop_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler serves catalog read endpoints.
type Handler struct {
	svc *service.Service
}

// New creates a new catalog handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListProducts returns the full catalog in catalog order.
func (h *Handler) ListProducts(c *gin.Context) {
	httpkit.OK(c, gin.H{"products": transport.ToProductResponses(h.svc.List())})
}

// GetProductByName returns a single product by case-insensitive name.
func (h *Handler) GetProductByName(c *gin.Context) {
	product, err := h.svc.GetByName(c.Param("name"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ToProductResponse(product))
}
