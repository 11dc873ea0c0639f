package catalogRepo

import "glowdesk/models"

// CatalogRepository defines data access for a salon's service catalog.
type CatalogRepository interface {
	// ListServices returns every service owned by the salon, active or not.
	ListServices(salonID string) ([]models.Service, error)
	// GetServiceByName fetches one service by its (salon-unique) name.
	GetServiceByName(salonID, name string) (*models.Service, error)
	GetServiceByID(salonID, id string) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(salonID, id string) error
	// Rename changes a service's name. Staff qualification lists that
	// reference the old name are reconciled by the staff repository's
	// RenameServiceRefs, driven from the catalog service.
	Rename(salonID, id, newName string) (oldName string, err error)
}
