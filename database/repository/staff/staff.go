package staffRepo

import "glowdesk/models"

// StaffRepository defines data access for a salon's staff roster.
type StaffRepository interface {
	ListStaff(salonID string) ([]models.Staff, error)
	GetByID(salonID, id string) (*models.Staff, error)
	Create(member *models.Staff) error
	Update(member *models.Staff) error
	Delete(salonID, id string) error
	// RenameServiceRefs rewrites every qualification list entry that still
	// carries oldName. This is the reconciliation point for the name-based
	// service/staff join; the scheduling engine itself never repairs stale
	// names.
	RenameServiceRefs(salonID, oldName, newName string) (int64, error)
}
