package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/http/response"
	"github.com/yungbote/careerpath-backend/internal/platform/apierr"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type AdvisoryHandler struct {
	advisory services.AdvisoryService
}

func NewAdvisoryHandler(advisory services.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisory: advisory}
}

// GET /available-times?advisor_id=3&date=2025-06-01
func (h *AdvisoryHandler) AvailableTimes(c *gin.Context) {
	advisorID, err := parseUintParam(c.Query("advisor_id"), "advisor_id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	date := c.Query("date")
	times, err := h.advisory.AvailableTimes(c.Request.Context(), advisorID, date)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"advisor_id": advisorID, "date": date, "available_times": times})
}

// GET /booked-slots?advisor_id=3&date_from=2025-06-01
// Both parameters are optional.
func (h *AdvisoryHandler) BookedSlots(c *gin.Context) {
	var advisorID uint
	if raw := c.Query("advisor_id"); raw != "" {
		id, err := parseUintParam(raw, "advisor_id")
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		advisorID = id
	}
	slots, err := h.advisory.BookedSlots(c.Request.Context(), advisorID, c.Query("date_from"))
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"booked_slots": slots})
}

// POST /advisory-submit
// body: { "advisor_id": 3, "date": "2025-06-01", "time": "09:00" }
func (h *AdvisoryHandler) Submit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req struct {
		AdvisorID uint   `json:"advisor_id"`
		Date      string `json:"date"`
		Time      string `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	b, err := h.advisory.Book(c.Request.Context(), req.AdvisorID, userID, req.Date, req.Time)
	if err != nil {
		if domain.IsCode(err, domain.CodeConflict) {
			response.RespondFromError(c, apierr.New(http.StatusConflict, "already_booked", err))
			return
		}
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{
		"id":         b.ID,
		"advisor_id": b.AdvisorID,
		"date":       b.Date,
		"time":       b.Time,
		"link":       b.Link,
	})
}

// GET /bookings
func (h *AdvisoryHandler) ListBookings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookings, err := h.advisory.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"bookings": bookings})
}

// DELETE /bookings/:id
func (h *AdvisoryHandler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := h.advisory.Cancel(c.Request.Context(), bookingID, userID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
