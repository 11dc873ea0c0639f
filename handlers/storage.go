package handlers

import (
	"net/http"

	"glowdesk/services/storage"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler uploads branding assets and staff photos.
type StorageHandler struct {
	Svc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Svc: svc}
}

func (h *StorageHandler) UploadImage(c *gin.Context) {
	if h.Svc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "image storage is not configured", "")
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "missing file", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unreadable file", err.Error())
		return
	}
	defer file.Close()

	uploaded, err := h.Svc.UploadImage(c.Request.Context(), file, "glowdesk/"+c.Param("salonId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "upload failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, uploaded)
}

func (h *StorageHandler) DeleteImage(c *gin.Context) {
	if h.Svc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "image storage is not configured", "")
		return
	}
	var input struct {
		PublicID string `json:"publicId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.PublicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing publicId", "")
		return
	}
	if err := h.Svc.DeleteImage(c.Request.Context(), input.PublicID); err != nil {
		utils.JSONError(c, http.StatusBadGateway, "delete failed", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
