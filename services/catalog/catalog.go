package catalog

import (
	"fmt"
	"strings"

	catalogRepo "glowdesk/database/repository/catalog"
	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
	"glowdesk/services/tasks"

	"go.uber.org/zap"
)

// DefaultCatalogService is the production implementation. Tasks is optional;
// without it rename cascades run inline.
type DefaultCatalogService struct {
	Repo      catalogRepo.CatalogRepository
	StaffRepo staffRepo.StaffRepository
	Tasks     TaskEnqueuer
	Logger    *zap.Logger
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func (s *DefaultCatalogService) List(salonID string) ([]models.Service, error) {
	return s.Repo.ListServices(salonID)
}

func (s *DefaultCatalogService) Get(salonID, id string) (*models.Service, error) {
	return s.Repo.GetServiceByID(salonID, id)
}

func validateService(service *models.Service) error {
	if strings.TrimSpace(service.Name) == "" {
		return fmt.Errorf("service name is required")
	}
	if service.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

func (s *DefaultCatalogService) Create(service *models.Service) error {
	if err := validateService(service); err != nil {
		return err
	}
	return s.Repo.Create(service)
}

// Update edits price, duration and active flag. Name changes must go through
// Rename so the staff cascade runs.
func (s *DefaultCatalogService) Update(service *models.Service) error {
	if err := validateService(service); err != nil {
		return err
	}
	current, err := s.Repo.GetServiceByID(service.SalonID, service.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("service %s not found", service.ID)
	}
	if current.Name != service.Name {
		return fmt.Errorf("use rename to change a service's name")
	}
	return s.Repo.Update(service)
}

func (s *DefaultCatalogService) Delete(salonID, id string) error {
	return s.Repo.Delete(salonID, id)
}

func (s *DefaultCatalogService) Rename(salonID, id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("new service name is required")
	}
	oldName, err := s.Repo.Rename(salonID, id, newName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}

	payload := tasks.RenameCascadePayload{SalonID: salonID, OldName: oldName, NewName: newName}
	if s.Tasks != nil {
		task, err := tasks.NewRenameCascadeTask(payload)
		if err == nil {
			if _, err = s.Tasks.Enqueue(task); err == nil {
				s.logger().Info("queued service rename cascade",
					zap.String("salonID", salonID), zap.String("oldName", oldName), zap.String("newName", newName))
				return nil
			}
		}
		s.logger().Warn("failed to queue rename cascade, running inline", zap.Error(err))
	}

	// Inline fallback keeps the name-based join consistent even without a
	// worker running.
	updated, err := s.StaffRepo.RenameServiceRefs(salonID, oldName, newName)
	if err != nil {
		return fmt.Errorf("service renamed but staff cascade failed: %w", err)
	}
	s.logger().Info("renamed service references inline",
		zap.String("salonID", salonID), zap.Int64("staffUpdated", updated))
	return nil
}
