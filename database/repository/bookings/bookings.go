package bookingRepo

import (
	"time"

	"glowdesk/models"
)

// BookingRepository defines data access for placed bookings.
type BookingRepository interface {
	// ListForDay returns every booking whose start time falls on the given
	// calendar day, regardless of status; the availability engine decides
	// which statuses occupy time.
	ListForDay(salonID string, day time.Time) ([]models.Booking, error)
	ListForSalon(salonID string, limit int64) ([]models.Booking, error)
	GetByID(salonID, id string) (*models.Booking, error)
	// Create persists a new booking under a freshly issued id.
	Create(booking *models.Booking) error
	UpdateStatus(salonID, id, status string) error
	// CompletePast flips confirmed bookings whose time is before cutoff to
	// completed. Used by the nightly sweep.
	CompletePast(cutoff time.Time) (int64, error)
}
