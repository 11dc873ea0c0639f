package booking

import (
	"context"
	"fmt"
	"time"

	"glowdesk/models"
	"glowdesk/services/scheduling"
)

// slotContext is one fresh fetch of everything the availability engine needs
// for a single salon and day. It is gathered per request and never cached,
// so every computation sees current bookings.
type slotContext struct {
	salon    *models.Salon
	service  *models.Service
	day      time.Time
	dayHours models.DayHours
	roster   []models.Staff
	catalog  []models.Service
	bookings []models.Booking
}

func (sc *slotContext) request(clock, staffID string) scheduling.SlotRequest {
	return scheduling.SlotRequest{
		Day:      sc.day,
		Start:    clock,
		Service:  *sc.service,
		StaffID:  staffID,
		Roster:   sc.roster,
		Catalog:  sc.catalog,
		Bookings: sc.bookings,
	}
}

// onGrid reports whether clock is one of the slot starts the generator would
// offer for this day.
func (sc *slotContext) onGrid(clock string) bool {
	for s := range scheduling.DaySlots(sc.dayHours) {
		if s == clock {
			return true
		}
	}
	return false
}

func (s *DefaultBookingFlowService) fetchSalon(salonID string) (*models.Salon, error) {
	salon, err := s.SalonRepo.GetByID(salonID)
	if err != nil {
		return nil, NewCollaboratorError("failed to load salon", err)
	}
	if salon == nil {
		return nil, NewValidationError("unknown salon")
	}
	return salon, nil
}

func (s *DefaultBookingFlowService) gatherSlotContext(salonID, serviceName, date string) (*slotContext, error) {
	if serviceName == "" {
		return nil, NewStateError("no service selected yet")
	}
	if date == "" {
		return nil, NewStateError("no date selected yet")
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, NewValidationError("date must be YYYY-MM-DD")
	}

	salon, err := s.fetchSalon(salonID)
	if err != nil {
		return nil, err
	}
	dayHours, open := salon.BusinessHours.ForDay(day)
	if !open {
		return nil, NewValidationError("the salon is closed on that day")
	}

	svc, err := s.CatalogRepo.GetServiceByName(salonID, serviceName)
	if err != nil {
		return nil, NewCollaboratorError("failed to look up service", err)
	}
	if svc == nil || !svc.Active {
		return nil, NewValidationError(fmt.Sprintf("service %q is not offered", serviceName))
	}

	roster, err := s.StaffRepo.ListStaff(salonID)
	if err != nil {
		return nil, NewCollaboratorError("failed to load staff roster", err)
	}
	catalog, err := s.CatalogRepo.ListServices(salonID)
	if err != nil {
		return nil, NewCollaboratorError("failed to load service catalog", err)
	}
	bookings, err := s.BookingRepo.ListForDay(salonID, day)
	if err != nil {
		return nil, NewCollaboratorError("failed to load bookings", err)
	}

	return &slotContext{
		salon:    salon,
		service:  svc,
		day:      day,
		dayHours: dayHours,
		roster:   roster,
		catalog:  catalog,
		bookings: bookings,
	}, nil
}

func (s *DefaultBookingFlowService) AvailableDays(ctx context.Context, salonID string, weekOffset int) ([]string, error) {
	if weekOffset < 0 {
		weekOffset = 0
	}
	salon, err := s.fetchSalon(salonID)
	if err != nil {
		return nil, err
	}
	days := scheduling.AvailableDays(salon.BusinessHours, s.now(), weekOffset)
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Format(dateLayout))
	}
	return out, nil
}

func (s *DefaultBookingFlowService) AvailableSlots(ctx context.Context, salonID, sessionID string) ([]string, error) {
	session, err := s.loadActive(ctx, salonID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.SlotsForDay(ctx, salonID, session.Draft.SelectedService, session.Draft.SelectedDate, "")
}

// SlotsForDay lists the bookable "HH:MM" starts for an explicit service,
// date and optional staff member, independent of any session.
func (s *DefaultBookingFlowService) SlotsForDay(ctx context.Context, salonID, serviceName, date, staffID string) ([]string, error) {
	sc, err := s.gatherSlotContext(salonID, serviceName, date)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, 16)
	for clock := range scheduling.DaySlots(sc.dayHours) {
		if scheduling.SlotAvailable(sc.request(clock, staffID)) {
			out = append(out, clock)
		}
	}
	return out, nil
}

func (s *DefaultBookingFlowService) StaffOptions(ctx context.Context, salonID, sessionID string) ([]models.Staff, error) {
	session, err := s.loadActive(ctx, salonID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.SelectedService == "" {
		return nil, NewStateError("no service selected yet")
	}
	roster, err := s.StaffRepo.ListStaff(salonID)
	if err != nil {
		return nil, NewCollaboratorError("failed to load staff roster", err)
	}
	return scheduling.EligibleStaff(session.Draft.SelectedService, roster), nil
}
