package handler

import (
	"lingo-backend/internal/service"
	"lingo-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for the read-only catalogs.
type CatalogHandler struct {
	service service.CatalogServicer
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service service.CatalogServicer) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListBundles godoc
// @Summary      List all bundles
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Bundle}
// @Failure      500  {object}  response.Response
// @Router       /get-all-bundles [get]
func (h *CatalogHandler) ListBundles(c *gin.Context) {
	bundles, err := h.service.ListBundles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, bundles)
}

// ListFAQs godoc
// @Summary      List all FAQs
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.FAQ}
// @Failure      500  {object}  response.Response
// @Router       /get-faqs [get]
func (h *CatalogHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.service.ListFAQs(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, faqs)
}
