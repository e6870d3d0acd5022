package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type AssessmentHandler struct {
	assessment services.AssessmentService
	profiles   services.ProfileService
	catalog    services.CatalogService
}

func NewAssessmentHandler(assessment services.AssessmentService, profiles services.ProfileService, catalog services.CatalogService) *AssessmentHandler {
	return &AssessmentHandler{assessment: assessment, profiles: profiles, catalog: catalog}
}

// GET /test/statements
func (h *AssessmentHandler) Statements(c *gin.Context) {
	statements, err := h.catalog.Statements(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"statements": statements, "total": len(statements)})
}

// POST /test/answers
// body: { "answers": [{ "statement_id": 1, "score": 4 }] }
func (h *AssessmentHandler) SaveAnswers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		Answers []services.AnswerInput `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	progress, err := h.assessment.SaveAnswers(c.Request.Context(), userID, req.Answers)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"progress": progress})
}

// DELETE /test/answers
func (h *AssessmentHandler) ResetAnswers(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.assessment.ResetAnswers(c.Request.Context(), userID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// GET /test/progress
func (h *AssessmentHandler) Progress(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	progress, err := h.assessment.Progress(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"progress": progress})
}

// GET /test/profile
func (h *AssessmentHandler) Profile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.profiles.Profile(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": profile, "complete": profile.Complete()})
}
