package handlers

import (
	"net/http"
	"strings"

	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler manages the salon roster from the operator dashboard.
type StaffHandler struct {
	Repo staffRepo.StaffRepository
}

func NewStaffHandler(repo staffRepo.StaffRepository) *StaffHandler {
	return &StaffHandler{Repo: repo}
}

func (h *StaffHandler) List(c *gin.Context) {
	roster, err := h.Repo.ListStaff(c.Param("salonId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": roster})
}

func (h *StaffHandler) Create(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff member", err.Error())
		return
	}
	if strings.TrimSpace(member.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff member", "name is required")
		return
	}
	member.SalonID = c.Param("salonId")
	if err := h.Repo.Create(&member); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff member", err.Error())
		return
	}
	member.SalonID = c.Param("salonId")
	member.ID = c.Param("id")
	if err := h.Repo.Update(&member); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("salonId"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete staff member", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
