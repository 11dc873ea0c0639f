package booking

import (
	"context"
	"sync"

	"glowdesk/models"
	"glowdesk/services/scheduling"

	"go.uber.org/zap"
)

func (s *DefaultBookingFlowService) commitGuard(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	guard, ok := s.commits[key]
	if !ok {
		guard = &sync.Mutex{}
		s.commits[key] = guard
	}
	return guard
}

func (s *DefaultBookingFlowService) Commit(ctx context.Context, salonID, sessionID string) (*models.Booking, error) {
	guard := s.commitGuard(sessionKey(salonID, sessionID))
	if !guard.TryLock() {
		return nil, NewStateError("a confirmation for this session is already in progress")
	}
	defer guard.Unlock()

	session, err := s.loadActive(ctx, salonID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepConfirm {
		return nil, NewStateError("the booking is not ready to confirm")
	}
	d := session.Draft
	if d.SelectedService == "" || d.SelectedDate == "" || d.SelectedTime == "" || d.SelectedStaff == "" {
		return nil, NewStateError("the booking draft is incomplete")
	}
	if err := validateCustomerInfo(d.CustomerInfo); err != nil {
		return nil, err
	}

	// Final availability re-check against a fresh fetch. The slot may have
	// been taken since the customer selected it.
	sc, err := s.gatherSlotContext(salonID, d.SelectedService, d.SelectedDate)
	if err != nil {
		return nil, err
	}
	if !scheduling.SlotAvailable(sc.request(d.SelectedTime, d.SelectedStaff)) {
		return nil, NewConflictError("that time was taken while you were booking, please pick another slot")
	}

	start, err := scheduling.CombineDayTime(sc.day, d.SelectedTime)
	if err != nil {
		return nil, NewValidationError("time must be HH:MM")
	}

	booking := &models.Booking{
		SalonID:       salonID,
		CustomerName:  d.CustomerInfo.Name,
		CustomerPhone: d.CustomerInfo.Phone,
		Service:       sc.service.Name,
		Time:          start,
		StaffAssigned: d.SelectedStaff,
		Status:        models.BookingPending,
		CreatedAt:     s.now(),
	}
	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, NewCollaboratorError("failed to place booking", err)
	}

	// The booking is placed; a failed cleanup must not fail the commit.
	if err := s.Progress.Clear(ctx, salonID, sessionID); err != nil {
		s.logger().Error("failed to clear booking progress after commit",
			zap.String("salonID", salonID), zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.logger().Info("booking placed",
		zap.String("salonID", salonID),
		zap.String("bookingID", booking.ID),
		zap.String("service", booking.Service),
		zap.Time("time", booking.Time))
	return booking, nil
}
