package handlers

import (
	"net/http"

	"glowdesk/models"
	"glowdesk/services/catalog"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the service catalog to the operator dashboard.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.Svc.List(c.Param("salonId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service", err.Error())
		return
	}
	service.SalonID = c.Param("salonId")
	if err := h.Svc.Create(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service", err.Error())
		return
	}
	service.SalonID = c.Param("salonId")
	service.ID = c.Param("id")
	if err := h.Svc.Update(&service); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("salonId"), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// Rename is separate from Update so the staff qualification cascade always
// runs when a name changes.
func (h *CatalogHandler) Rename(c *gin.Context) {
	var input struct {
		NewName string `json:"newName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rename request", err.Error())
		return
	}
	if err := h.Svc.Rename(c.Param("salonId"), c.Param("id"), input.NewName); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to rename service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"renamed": true})
}
