package catalog

import (
	"glowdesk/models"

	"github.com/hibiken/asynq"
)

// CatalogService manages a salon's service catalog from the operator
// dashboard. Renames are the delicate operation: staff qualification lists
// reference services by name, so every rename is cascaded into the roster.
type CatalogService interface {
	List(salonID string) ([]models.Service, error)
	Get(salonID, id string) (*models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(salonID, id string) error
	// Rename changes a service's name and cascades the change into staff
	// qualification lists, asynchronously when a task queue is wired.
	Rename(salonID, id, newName string) error
}

// TaskEnqueuer is the slice of asynq.Client the catalog service needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
