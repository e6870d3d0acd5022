package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type AdminHandler struct {
	invalidator services.CacheInvalidator
}

func NewAdminHandler(invalidator services.CacheInvalidator) *AdminHandler {
	return &AdminHandler{invalidator: invalidator}
}

// POST /admin/cache/invalidate
func (h *AdminHandler) InvalidateCaches(c *gin.Context) {
	if err := h.invalidator.InvalidateAll(c.Request.Context()); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
