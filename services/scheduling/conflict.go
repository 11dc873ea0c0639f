package scheduling

import (
	"time"

	"glowdesk/models"
)

// SlotRequest describes one candidate slot to evaluate. Bookings must be the
// freshest same-day fetch for Day; the detector itself performs no I/O, so
// the same request always yields the same answer.
type SlotRequest struct {
	Day     time.Time      // calendar day of the candidate slot
	Start   string         // "HH:MM" start of the candidate slot
	Service models.Service // service being booked (its duration sizes the slot)
	// StaffID narrows the check to one staff member when the customer has
	// already chosen someone. Empty or models.AnyStaff means any eligible
	// member may take the slot.
	StaffID  string
	Roster   []models.Staff
	Catalog  []models.Service // full catalog, for durations of existing bookings
	Bookings []models.Booking // bookings on Day, any status
}

// SlotAvailable reports whether the candidate slot can be booked: at least
// one staff member eligible for the service must be free of overlapping
// bookings for the whole [start, start+duration) interval. Cancelled
// bookings do not occupy time. When a specific staff member was requested
// the check fails closed if that member is not eligible.
func SlotAvailable(req SlotRequest) bool {
	slotStart, err := CombineDayTime(req.Day, req.Start)
	if err != nil {
		return false
	}
	slotEnd := slotStart.Add(time.Duration(DurationMinutes(req.Service.Duration)) * time.Minute)

	eligible := EligibleStaff(req.Service.Name, req.Roster)
	if req.StaffID != "" && req.StaffID != models.AnyStaff {
		eligible = narrowToMember(eligible, req.StaffID)
	}
	if len(eligible) == 0 {
		return false
	}

	durations := catalogDurations(req.Catalog)
	for _, member := range eligible {
		if !memberBusy(member, slotStart, slotEnd, req.Bookings, durations) {
			return true
		}
	}
	return false
}

func narrowToMember(eligible []models.Staff, staffID string) []models.Staff {
	for _, member := range eligible {
		if member.ID == staffID {
			return []models.Staff{member}
		}
	}
	// Requested member is not eligible for the service: fail closed.
	return nil
}

func catalogDurations(catalog []models.Service) map[string]int {
	durations := make(map[string]int, len(catalog))
	for _, svc := range catalog {
		durations[svc.Name] = DurationMinutes(svc.Duration)
	}
	return durations
}

// memberBusy scans the day's bookings for one that occupies this member and
// overlaps the candidate interval. Intervals are half-open, so a booking
// ending exactly at slotStart does not conflict.
func memberBusy(member models.Staff, slotStart, slotEnd time.Time, bookings []models.Booking, durations map[string]int) bool {
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		if !b.Occupies(member) {
			continue
		}
		minutes, ok := durations[b.Service]
		if !ok {
			minutes = DefaultDurationMinutes
		}
		bStart := b.Time
		bEnd := bStart.Add(time.Duration(minutes) * time.Minute)
		if slotStart.Before(bEnd) && slotEnd.After(bStart) {
			return true
		}
	}
	return false
}
