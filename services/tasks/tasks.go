package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names routed by the background worker.
const (
	TypeRenameCascade = "catalog:rename_cascade"
	TypeBookingSweep  = "bookings:complete_past"
)

// RenameCascadePayload carries one service rename into the background worker
// so staff qualification lists can be rewritten to the new name.
type RenameCascadePayload struct {
	SalonID string `json:"salonId"`
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

func NewRenameCascadeTask(payload RenameCascadePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	// Retries matter here: a lost cascade leaves stale names in staff
	// qualification lists, which silently shrinks availability.
	return asynq.NewTask(TypeRenameCascade, b, asynq.MaxRetry(10)), nil
}

// NewBookingSweepTask marks past confirmed bookings completed. Registered
// with the scheduler to run nightly.
func NewBookingSweepTask() *asynq.Task {
	return asynq.NewTask(TypeBookingSweep, nil)
}
