package scheduling

import (
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cutService = models.Service{ID: "svc-1", SalonID: "salon-1", Name: "Cut & Style", Duration: "45", Active: true}
	dyeService = models.Service{ID: "svc-2", SalonID: "salon-1", Name: "Color", Duration: "90", Active: true}
	catalog    = []models.Service{cutService, dyeService}

	alice = models.Staff{ID: "staff-1", SalonID: "salon-1", Name: "Alice", Services: []string{"Cut & Style", "Color"}}
	bob   = models.Staff{ID: "staff-2", SalonID: "salon-1", Name: "Bob", Services: []string{"Cut & Style"}}
)

func bookingAt(clock, service, staff string) models.Booking {
	start, _ := CombineDayTime(aMonday, clock)
	return models.Booking{
		ID:            "bk-" + clock,
		SalonID:       "salon-1",
		Service:       service,
		Time:          start,
		StaffAssigned: staff,
		Status:        models.BookingConfirmed,
	}
}

func request(clock string, staffID string, bookings ...models.Booking) SlotRequest {
	return SlotRequest{
		Day:      aMonday,
		Start:    clock,
		Service:  cutService,
		StaffID:  staffID,
		Roster:   []models.Staff{alice},
		Catalog:  catalog,
		Bookings: bookings,
	}
}

func TestSlotAvailable_EmptyDay(t *testing.T) {
	// One 45-minute service, one eligible staff member, no bookings.
	assert.True(t, SlotAvailable(request("09:00", "")))

	// The last slot before close only has to start before closing time; it
	// may finish at 18:30.
	assert.True(t, SlotAvailable(request("17:45", "")))
}

func TestSlotAvailable_ExistingBookingBlocksOverlaps(t *testing.T) {
	// Alice already has 09:00-09:45 booked.
	existing := bookingAt("09:00", "Cut & Style", alice.ID)

	assert.False(t, SlotAvailable(request("09:00", "", existing)), "same start must conflict")
	assert.False(t, SlotAvailable(request("09:30", "", existing)), "partial overlap must conflict")
	assert.True(t, SlotAvailable(request("09:45", "", existing)), "back-to-back start is free")
}

func TestSlotAvailable_SecondEligibleStaffKeepsSlotOpen(t *testing.T) {
	// Alice is booked at 10:00 but Bob can also do the service.
	existing := bookingAt("10:00", "Cut & Style", alice.ID)
	req := request("10:00", "", existing)
	req.Roster = []models.Staff{alice, bob}

	assert.True(t, SlotAvailable(req))

	// With both booked the slot closes.
	req.Bookings = append(req.Bookings, bookingAt("10:00", "Cut & Style", bob.ID))
	assert.False(t, SlotAvailable(req))
}

func TestSlotAvailable_AnyAssignmentOccupiesEligibleStaff(t *testing.T) {
	// A floating "any" booking holds capacity on every member qualified for
	// its service until it is concretely assigned.
	floating := bookingAt("11:00", "Cut & Style", models.AnyStaff)
	req := request("11:00", "", floating)

	assert.False(t, SlotAvailable(req), "single eligible member is held by the floating booking")

	req.Roster = []models.Staff{alice, bob}
	assert.False(t, SlotAvailable(req), "a floating booking holds every eligible member")
}

func TestSlotAvailable_SpecificStaffConstraint(t *testing.T) {
	existing := bookingAt("09:00", "Cut & Style", alice.ID)
	req := request("09:00", alice.ID, existing)
	req.Roster = []models.Staff{alice, bob}

	assert.False(t, SlotAvailable(req), "requested member is booked")

	req.StaffID = bob.ID
	assert.True(t, SlotAvailable(req), "the other member is free")

	// Bob cannot color hair: requesting him for Color fails closed.
	req.Service = dyeService
	assert.False(t, SlotAvailable(req))
}

func TestSlotAvailable_NoEligibleStaff(t *testing.T) {
	req := request("09:00", "")
	req.Roster = []models.Staff{bob}
	req.Service = dyeService

	assert.False(t, SlotAvailable(req))
}

func TestSlotAvailable_CancelledBookingFreesSlot(t *testing.T) {
	cancelled := bookingAt("09:00", "Cut & Style", alice.ID)
	cancelled.Status = models.BookingCancelled

	assert.True(t, SlotAvailable(request("09:00", "", cancelled)))
}

func TestSlotAvailable_DurationOfExistingBookingRespected(t *testing.T) {
	// A 90-minute Color at 09:00 blocks Alice until 10:30.
	existing := bookingAt("09:00", "Color", alice.ID)

	assert.False(t, SlotAvailable(request("10:00", "", existing)))
	assert.True(t, SlotAvailable(request("10:30", "", existing)))
}

func TestSlotAvailable_Pure(t *testing.T) {
	existing := bookingAt("09:00", "Cut & Style", alice.ID)
	req := request("09:30", "", existing)

	first := SlotAvailable(req)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SlotAvailable(req))
	}
}

func TestSlotAvailable_WholeDayAgainstProperties(t *testing.T) {
	// Every slot the generator emits must agree with the detector's
	// guarantee: available implies a free eligible member exists.
	existing := []models.Booking{
		bookingAt("09:00", "Cut & Style", alice.ID),
		bookingAt("13:00", "Color", alice.ID),
	}
	day := models.DayHours{Open: "09:00", Close: "18:00", IsOpen: true}

	for clock := range DaySlots(day) {
		req := request(clock, "", existing...)
		got := SlotAvailable(req)

		slotStart, err := CombineDayTime(aMonday, clock)
		require.NoError(t, err)
		slotEnd := slotStart.Add(45 * time.Minute)

		durations := catalogDurations(catalog)
		free := false
		for _, member := range EligibleStaff(cutService.Name, req.Roster) {
			busy := false
			for _, b := range existing {
				d := time.Duration(durations[b.Service]) * time.Minute
				if b.Occupies(member) && slotStart.Before(b.Time.Add(d)) && slotEnd.After(b.Time) {
					busy = true
					break
				}
			}
			if !busy {
				free = true
				break
			}
		}
		assert.Equal(t, free, got, "slot %s", clock)
	}
}

func TestEligibleStaff(t *testing.T) {
	roster := []models.Staff{alice, bob}

	eligible := EligibleStaff("Color", roster)
	require.Len(t, eligible, 1)
	assert.Equal(t, alice.ID, eligible[0].ID)

	assert.Len(t, EligibleStaff("Cut & Style", roster), 2)
	assert.Empty(t, EligibleStaff("Massage", roster), "stale or unknown names match nobody")
}
