package handlers

import (
	"net/http"
	"time"

	salonRepo "glowdesk/database/repository/salon"
	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// SalonHandler manages salon configuration: widget config for customers,
// hours and branding for operators.
type SalonHandler struct {
	Repo salonRepo.SalonRepository
}

func NewSalonHandler(repo salonRepo.SalonRepository) *SalonHandler {
	return &SalonHandler{Repo: repo}
}

// WidgetConfig is the public configuration the embedded widget loads before
// opening a session. The dashboard key hash never leaves the server.
func (h *SalonHandler) WidgetConfig(c *gin.Context) {
	salon, err := h.Repo.GetByID(c.Param("salonId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load salon", err.Error())
		return
	}
	if salon == nil {
		utils.JSONError(c, http.StatusNotFound, "unknown salon", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":                 salon.ID,
		"name":               salon.Name,
		"businessHours":      salon.BusinessHours,
		"hideStaffSelection": salon.HideStaffSelection,
		"brandColors":        salon.BrandColors,
	})
}

func (h *SalonHandler) Create(c *gin.Context) {
	var input struct {
		Name               string               `json:"name"`
		DashboardKey       string               `json:"dashboardKey"`
		BusinessHours      models.BusinessHours `json:"businessHours"`
		HideStaffSelection bool                 `json:"hideStaffSelection"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid salon", err.Error())
		return
	}
	if input.Name == "" || len(input.DashboardKey) < 8 {
		utils.JSONError(c, http.StatusBadRequest, "invalid salon", "name and a dashboard key of at least 8 characters are required")
		return
	}
	if err := validateBusinessHours(input.BusinessHours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid business hours", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.DashboardKey), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create salon", err.Error())
		return
	}
	salon := models.Salon{
		Name:               input.Name,
		BusinessHours:      input.BusinessHours,
		HideStaffSelection: input.HideStaffSelection,
		DashboardKeyHash:   string(hash),
	}
	if err := h.Repo.Create(&salon); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create salon", err.Error())
		return
	}
	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) UpdateHours(c *gin.Context) {
	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid business hours", err.Error())
		return
	}
	if err := validateBusinessHours(hours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid business hours", err.Error())
		return
	}
	if err := h.Repo.UpdateBusinessHours(c.Param("salonId"), hours); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update business hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"businessHours": hours})
}

func (h *SalonHandler) UpdateBranding(c *gin.Context) {
	var colors models.BrandColors
	if err := c.ShouldBindJSON(&colors); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid brand colors", err.Error())
		return
	}
	if err := h.Repo.UpdateBranding(c.Param("salonId"), colors); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update branding", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"brandColors": colors})
}

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// validateBusinessHours rejects windows the slot generator could not work
// with. Closed days may carry empty windows.
func validateBusinessHours(hours models.BusinessHours) error {
	for weekday, day := range hours {
		if !weekdayNames[weekday] {
			return &hoursError{"unknown weekday " + weekday}
		}
		if !day.IsOpen {
			continue
		}
		open, err := time.Parse("15:04", day.Open)
		if err != nil {
			return &hoursError{weekday + ": open time must be HH:MM"}
		}
		close, err := time.Parse("15:04", day.Close)
		if err != nil {
			return &hoursError{weekday + ": close time must be HH:MM"}
		}
		if !open.Before(close) {
			return &hoursError{weekday + ": open time must be before close time"}
		}
	}
	return nil
}

type hoursError struct{ msg string }

func (e *hoursError) Error() string { return e.msg }
