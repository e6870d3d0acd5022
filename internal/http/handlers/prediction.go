package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type PredictionHandler struct {
	recommendations services.RecommendationService
}

func NewPredictionHandler(recommendations services.RecommendationService) *PredictionHandler {
	return &PredictionHandler{recommendations: recommendations}
}

// POST /predict-careers
func (h *PredictionHandler) Predict(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	res, err := h.recommendations.Predict(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, res)
}
