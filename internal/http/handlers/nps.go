package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type NPSHandler struct {
	feedback services.FeedbackService
}

func NewNPSHandler(feedback services.FeedbackService) *NPSHandler {
	return &NPSHandler{feedback: feedback}
}

// GET /nps/status
func (h *NPSHandler) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	st, err := h.feedback.Status(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"nps": st})
}

// GET /nps/check
func (h *NPSHandler) Check(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	res, err := h.feedback.Check(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /nps/update-time
// body: { "seconds": 30 }
func (h *NPSHandler) UpdateTime(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		Seconds float64 `json:"seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.feedback.UpdateTime(c.Request.Context(), userID, req.Seconds)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /nps/submit
// body: { "kind": "page"|"test", "score": 0-10 }
func (h *NPSHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		Kind  string `json:"kind"`
		Score *int   `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Score == nil {
		response.RespondFromError(c, domain.Validation("nps.Submit", "score is required"))
		return
	}
	res, err := h.feedback.Submit(c.Request.Context(), userID, domain.NPSKind(req.Kind), *req.Score)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, res)
}
