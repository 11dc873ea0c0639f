package handlers

import (
	"net/http"
	"time"

	bookingRepo "glowdesk/database/repository/bookings"
	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// BookingAdminHandler gives operators a view of placed bookings and control
// over their status.
type BookingAdminHandler struct {
	Repo bookingRepo.BookingRepository
}

func NewBookingAdminHandler(repo bookingRepo.BookingRepository) *BookingAdminHandler {
	return &BookingAdminHandler{Repo: repo}
}

// List returns bookings for one day when ?date=YYYY-MM-DD is given, or the
// most recent bookings otherwise.
func (h *BookingAdminHandler) List(c *gin.Context) {
	salonID := c.Param("salonId")

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "date must be YYYY-MM-DD")
			return
		}
		bookings, err := h.Repo.ListForDay(salonID, day)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	bookings, err := h.Repo.ListForSalon(salonID, 200)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

var allowedStatuses = map[string]bool{
	models.BookingPending:   true,
	models.BookingConfirmed: true,
	models.BookingCancelled: true,
	models.BookingCompleted: true,
}

func (h *BookingAdminHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !allowedStatuses[input.Status] {
		utils.JSONError(c, http.StatusBadRequest, "invalid status", "status must be pending, confirmed, cancelled or completed")
		return
	}
	if err := h.Repo.UpdateStatus(c.Param("salonId"), c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}
