package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"glowdesk/middleware"
	"glowdesk/services/booking"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WidgetHandler serves the embedded booking widget: session lifecycle,
// availability queries and the final confirmation.
type WidgetHandler struct {
	Flow       booking.BookingFlowService
	SessionTTL time.Duration
	Logger     *zap.Logger
}

func NewWidgetHandler(flow booking.BookingFlowService, sessionTTL time.Duration, logger *zap.Logger) *WidgetHandler {
	return &WidgetHandler{Flow: flow, SessionTTL: sessionTTL, Logger: logger}
}

// writeFlowError maps workflow error codes onto HTTP statuses. Every mapped
// status is recoverable from the widget's point of view.
func writeFlowError(c *gin.Context, err error) {
	code := booking.ErrorCode(err)
	status := http.StatusInternalServerError
	switch code {
	case booking.CodeValidation:
		status = http.StatusBadRequest
	case booking.CodeConflict, booking.CodeState:
		status = http.StatusConflict
	case booking.CodeCollaborator:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

// StartSession opens or resumes a booking session. A valid session token in
// the Authorization header resumes that session; otherwise a fresh one is
// opened and a new token issued.
func (h *WidgetHandler) StartSession(c *gin.Context) {
	salonID := c.Param("salonId")

	sessionID := ""
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if sid, sal, err := utils.ParseSessionToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil && sal == salonID {
			sessionID = sid
		}
	}

	session, err := h.Flow.StartSession(c.Request.Context(), salonID, sessionID)
	if err != nil {
		writeFlowError(c, err)
		return
	}

	token, err := utils.GenerateSessionToken(session.SessionID, salonID, h.SessionTTL)
	if err != nil {
		h.Logger.Error("failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "token": token})
}

func sessionIDFrom(c *gin.Context) string {
	return c.GetString(middleware.SessionIDKey)
}

func (h *WidgetHandler) GetDays(c *gin.Context) {
	week, _ := strconv.Atoi(c.DefaultQuery("week", "0"))
	days, err := h.Flow.AvailableDays(c.Request.Context(), c.Param("salonId"), week)
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetSlots answers from explicit query parameters when given, falling back
// to the session's current draft.
func (h *WidgetHandler) GetSlots(c *gin.Context) {
	var slots []string
	var err error
	if date, service := c.Query("date"), c.Query("service"); date != "" && service != "" {
		slots, err = h.Flow.SlotsForDay(c.Request.Context(), c.Param("salonId"), service, date, c.Query("staff"))
	} else {
		slots, err = h.Flow.AvailableSlots(c.Request.Context(), c.Param("salonId"), sessionIDFrom(c))
	}
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *WidgetHandler) GetStaffOptions(c *gin.Context) {
	options, err := h.Flow.StaffOptions(c.Request.Context(), c.Param("salonId"), sessionIDFrom(c))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": options})
}

func (h *WidgetHandler) Advance(c *gin.Context) {
	var event booking.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event", "details": err.Error()})
		return
	}
	session, err := h.Flow.Advance(c.Request.Context(), c.Param("salonId"), sessionIDFrom(c), event)
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *WidgetHandler) GoBack(c *gin.Context) {
	session, err := h.Flow.GoBack(c.Request.Context(), c.Param("salonId"), sessionIDFrom(c))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil, "abandoned": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *WidgetHandler) Commit(c *gin.Context) {
	placed, err := h.Flow.Commit(c.Request.Context(), c.Param("salonId"), sessionIDFrom(c))
	if err != nil {
		writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": placed, "step": booking.StepSuccess})
}
