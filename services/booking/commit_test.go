package booking

import (
	"context"
	"testing"
	"time"

	"glowdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit_PlacesBookingAndClearsSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.driveTo(t, StepConfirm)

	booking, err := f.svc.Commit(ctx, "salon-1", session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "Cut & Style", booking.Service)
	assert.Equal(t, testAlice.ID, booking.StaffAssigned)
	assert.Equal(t, "Dana", booking.CustomerName)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), booking.Time)

	// The session is destroyed; a repeated commit cannot double-book.
	_, err = f.svc.Commit(ctx, "salon-1", session.SessionID)
	assert.Equal(t, CodeState, ErrorCode(err))
}

func TestCommit_RequiresConfirmStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.driveTo(t, StepInfo)

	_, err := f.svc.Commit(ctx, "salon-1", session.SessionID)
	assert.Equal(t, CodeState, ErrorCode(err))
}

func TestCommit_RechecksAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.driveTo(t, StepConfirm)

	// Someone else books Alice at 10:00 between the customer's selection and
	// their confirmation click.
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	f.bookings.bookings = append(f.bookings.bookings, models.Booking{
		ID: "rival", SalonID: "salon-1", Service: "Cut & Style",
		Time: start, StaffAssigned: testAlice.ID, Status: models.BookingConfirmed,
	})

	_, err := f.svc.Commit(ctx, "salon-1", session.SessionID)
	assert.Equal(t, CodeConflict, ErrorCode(err))

	// The session survives the failed commit so the customer can pick a new
	// time without starting over.
	kept, err := f.svc.StartSession(ctx, "salon-1", session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StepConfirm, kept.Step)
	assert.Equal(t, "Dana", kept.Draft.CustomerInfo.Name)
}

func TestCommit_AnyStaffBindsNobody(t *testing.T) {
	f := newFixture(t)
	f.salon.HideStaffSelection = true
	ctx := context.Background()

	session, err := f.svc.StartSession(ctx, "salon-1", "")
	require.NoError(t, err)
	for _, ev := range []Event{
		{Kind: EventSelectService, Service: "Cut & Style"},
		{Kind: EventSelectDate, Date: mondayDate},
		{Kind: EventSelectTime, Time: "10:00"},
		{Kind: EventSubmitInfo, Info: models.CustomerInfo{Name: "Dana", Phone: "5551234567"}},
	} {
		session, err = f.svc.Advance(ctx, "salon-1", session.SessionID, ev)
		require.NoError(t, err)
	}

	booking, err := f.svc.Commit(ctx, "salon-1", session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.AnyStaff, booking.StaffAssigned)
}

func TestCommit_InFlightGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.driveTo(t, StepConfirm)

	guard := f.svc.commitGuard(sessionKey("salon-1", session.SessionID))
	guard.Lock()
	_, err := f.svc.Commit(ctx, "salon-1", session.SessionID)
	assert.Equal(t, CodeState, ErrorCode(err))
	guard.Unlock()

	booking, err := f.svc.Commit(ctx, "salon-1", session.SessionID)
	require.NoError(t, err)
	assert.NotNil(t, booking)
}
