package salonRepo

import "glowdesk/models"

// SalonRepository defines data access for salon configuration.
type SalonRepository interface {
	GetByID(id string) (*models.Salon, error)
	Create(salon *models.Salon) error
	Update(salon *models.Salon) error
	UpdateBusinessHours(id string, hours models.BusinessHours) error
	UpdateBranding(id string, colors models.BrandColors) error
}
