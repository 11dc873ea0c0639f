package handlers

import (
	salonRepo "glowdesk/database/repository/salon"
)

// HandlerBundle collects the assembled handlers for route registration.
type HandlerBundle struct {
	// SalonRepo backs the operator auth middleware's dashboard key check.
	SalonRepo salonRepo.SalonRepository

	Widget   *WidgetHandler
	Catalog  *CatalogHandler
	Staff    *StaffHandler
	Salon    *SalonHandler
	Bookings *BookingAdminHandler
	Storage  *StorageHandler
}
