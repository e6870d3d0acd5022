package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GET /occupations
func (h *CatalogHandler) Occupations(c *gin.Context) {
	cat, err := h.catalog.Occupations(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, cat)
}

// GET /careers
func (h *CatalogHandler) Careers(c *gin.Context) {
	careers, err := h.catalog.Careers(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"careers": careers})
}

// GET /careers/:id
func (h *CatalogHandler) Career(c *gin.Context) {
	id, err := parseUintParam(c.Param("id"), "career id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	career, err := h.catalog.Career(c.Request.Context(), id)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"career": career})
}

// GET /advisors
func (h *CatalogHandler) Advisors(c *gin.Context) {
	advisors, err := h.catalog.Advisors(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"advisors": advisors})
}
