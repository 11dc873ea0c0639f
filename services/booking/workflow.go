package booking

import (
	"context"
	"fmt"
	"time"

	"glowdesk/models"
	"glowdesk/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event kinds accepted by Advance, one per selection step.
const (
	EventSelectService = "selectService"
	EventSelectDate    = "selectDate"
	EventSelectTime    = "selectTime"
	EventSelectStaff   = "selectStaff"
	EventSubmitInfo    = "submitInfo"
)

// Event carries one customer selection. Only the field matching Kind is
// read.
type Event struct {
	Kind    string              `json:"kind"`
	Service string              `json:"service,omitempty"`
	Date    string              `json:"date,omitempty"`
	Time    string              `json:"time,omitempty"`
	Staff   string              `json:"staff,omitempty"`
	Info    models.CustomerInfo `json:"info,omitempty"`
}

// eventStep maps each event kind to the step it is legal at.
var eventStep = map[string]string{
	EventSelectService: StepService,
	EventSelectDate:    StepDate,
	EventSelectTime:    StepTime,
	EventSelectStaff:   StepStaff,
	EventSubmitInfo:    StepInfo,
}

func (s *DefaultBookingFlowService) StartSession(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error) {
	if sessionID != "" {
		existing, err := s.Progress.Load(ctx, salonID, sessionID)
		if err != nil {
			return nil, NewCollaboratorError("failed to restore booking session", err)
		}
		if existing != nil {
			return existing, nil
		}
	} else {
		sessionID = uuid.NewString()
	}

	session := &models.BookingSession{
		SessionID: sessionID,
		SalonID:   salonID,
		Step:      StepService,
	}
	if err := s.Progress.Save(ctx, session); err != nil {
		return nil, NewCollaboratorError("failed to open booking session", err)
	}
	s.logger().Debug("opened booking session",
		zap.String("salonID", salonID), zap.String("sessionID", sessionID))
	return session, nil
}

// loadActive fetches the session or fails with a state error when there is
// nothing to act on.
func (s *DefaultBookingFlowService) loadActive(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error) {
	session, err := s.Progress.Load(ctx, salonID, sessionID)
	if err != nil {
		return nil, NewCollaboratorError("failed to load booking session", err)
	}
	if session == nil {
		return nil, NewStateError("no active booking session")
	}
	return session, nil
}

func (s *DefaultBookingFlowService) Advance(ctx context.Context, salonID, sessionID string, event Event) (*models.BookingSession, error) {
	session, err := s.loadActive(ctx, salonID, sessionID)
	if err != nil {
		return nil, err
	}

	// A new event supersedes any step move still waiting on its timer.
	s.cancelPending(sessionKey(salonID, sessionID))

	wantStep, ok := eventStep[event.Kind]
	if !ok {
		return nil, NewValidationError(fmt.Sprintf("unknown event kind %q", event.Kind))
	}
	if session.Step != wantStep {
		return nil, NewStateError(fmt.Sprintf("%s is not accepted at the %s step", event.Kind, session.Step))
	}

	var next string
	switch event.Kind {
	case EventSelectService:
		next, err = s.applySelectService(session, event.Service)
	case EventSelectDate:
		next, err = s.applySelectDate(session, event.Date)
	case EventSelectTime:
		next, err = s.applySelectTime(session, event.Time)
	case EventSelectStaff:
		next, err = s.applySelectStaff(session, event.Staff)
	case EventSubmitInfo:
		next, err = s.applySubmitInfo(session, event.Info)
	}
	if err != nil {
		return nil, err
	}
	return s.advanceTo(ctx, session, next)
}

func (s *DefaultBookingFlowService) applySelectService(session *models.BookingSession, name string) (string, error) {
	svc, err := s.CatalogRepo.GetServiceByName(session.SalonID, name)
	if err != nil {
		return "", NewCollaboratorError("failed to look up service", err)
	}
	if svc == nil || !svc.Active {
		return "", NewValidationError(fmt.Sprintf("service %q is not offered", name))
	}
	if session.Draft.SelectedService != svc.Name {
		// Downstream selections were made for the old service.
		session.Draft.SelectedDate = ""
		session.Draft.SelectedTime = ""
		session.Draft.SelectedStaff = ""
	}
	session.Draft.SelectedService = svc.Name
	return StepDate, nil
}

func (s *DefaultBookingFlowService) applySelectDate(session *models.BookingSession, date string) (string, error) {
	day, err := parseDate(date)
	if err != nil {
		return "", NewValidationError("date must be YYYY-MM-DD")
	}
	today := s.now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if day.Before(todayStart) {
		return "", NewValidationError("date is in the past")
	}

	salon, err := s.fetchSalon(session.SalonID)
	if err != nil {
		return "", err
	}
	if _, open := salon.BusinessHours.ForDay(day); !open {
		return "", NewValidationError("the salon is closed on that day")
	}
	if session.Draft.SelectedDate != date {
		session.Draft.SelectedTime = ""
		session.Draft.SelectedStaff = ""
	}
	session.Draft.SelectedDate = date
	return StepTime, nil
}

func (s *DefaultBookingFlowService) applySelectTime(session *models.BookingSession, clock string) (string, error) {
	if !validClock(clock) {
		return "", NewValidationError("time must be HH:MM")
	}
	sc, err := s.gatherSlotContext(session.SalonID, session.Draft.SelectedService, session.Draft.SelectedDate)
	if err != nil {
		return "", err
	}
	if !sc.onGrid(clock) {
		return "", NewValidationError("time is outside the salon's bookable slots")
	}
	if !scheduling.SlotAvailable(sc.request(clock, "")) {
		return "", NewConflictError("that time was just taken, please pick another")
	}
	if session.Draft.SelectedTime != clock {
		session.Draft.SelectedStaff = ""
	}
	session.Draft.SelectedTime = clock

	if sc.salon.HideStaffSelection {
		session.Draft.SelectedStaff = models.AnyStaff
		return StepInfo, nil
	}
	return StepStaff, nil
}

func (s *DefaultBookingFlowService) applySelectStaff(session *models.BookingSession, staffID string) (string, error) {
	sc, err := s.gatherSlotContext(session.SalonID, session.Draft.SelectedService, session.Draft.SelectedDate)
	if err != nil {
		return "", err
	}
	if staffID != models.AnyStaff {
		member, err := s.StaffRepo.GetByID(session.SalonID, staffID)
		if err != nil {
			return "", NewCollaboratorError("failed to look up staff member", err)
		}
		if member == nil || !member.Performs(session.Draft.SelectedService) {
			return "", NewValidationError("that staff member does not offer the selected service")
		}
	}
	if !scheduling.SlotAvailable(sc.request(session.Draft.SelectedTime, staffID)) {
		return "", NewConflictError("that staff member is no longer free at the selected time")
	}
	session.Draft.SelectedStaff = staffID
	return StepInfo, nil
}

func (s *DefaultBookingFlowService) applySubmitInfo(session *models.BookingSession, info models.CustomerInfo) (string, error) {
	if err := validateCustomerInfo(info); err != nil {
		return "", err
	}
	session.Draft.CustomerInfo = info
	return StepConfirm, nil
}

// advanceTo persists the draft and moves the step pointer, either
// immediately or after AdvanceDelay via the timer.
func (s *DefaultBookingFlowService) advanceTo(ctx context.Context, session *models.BookingSession, next string) (*models.BookingSession, error) {
	if s.AdvanceDelay <= 0 {
		session.Step = next
		if err := s.Progress.Save(ctx, session); err != nil {
			return nil, NewCollaboratorError("failed to save booking session", err)
		}
		return session, nil
	}

	if err := s.Progress.Save(ctx, session); err != nil {
		return nil, NewCollaboratorError("failed to save booking session", err)
	}

	key := sessionKey(session.SalonID, session.SessionID)
	moved := *session
	stop := s.timer()(s.AdvanceDelay, func() {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()

		moved.Step = next
		if err := s.Progress.Save(context.Background(), &moved); err != nil {
			s.logger().Error("failed to persist deferred step move",
				zap.String("salonID", moved.SalonID), zap.String("sessionID", moved.SessionID), zap.Error(err))
		}
	})
	s.mu.Lock()
	s.pending[key] = stop
	s.mu.Unlock()
	return session, nil
}

func (s *DefaultBookingFlowService) cancelPending(key string) {
	s.mu.Lock()
	stop, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()
	if ok {
		stop()
	}
}

func (s *DefaultBookingFlowService) GoBack(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error) {
	session, err := s.loadActive(ctx, salonID, sessionID)
	if err != nil {
		return nil, err
	}
	s.cancelPending(sessionKey(salonID, sessionID))

	switch session.Step {
	case StepService:
		// Backing out of the first step abandons the whole session.
		if err := s.Progress.Clear(ctx, salonID, sessionID); err != nil {
			return nil, NewCollaboratorError("failed to abandon booking session", err)
		}
		return nil, nil
	case StepSuccess:
		return nil, NewStateError("a completed booking cannot be navigated")
	case StepInfo:
		salon, err := s.fetchSalon(salonID)
		if err != nil {
			return nil, err
		}
		if salon.HideStaffSelection {
			// The staff step was skipped on the way forward; skip it on the
			// way back too and drop the auto-assigned "any".
			session.Draft.SelectedStaff = ""
			session.Step = StepTime
		} else {
			session.Step = StepStaff
		}
	default:
		session.Step = previousStep(session.Step)
	}

	if err := s.Progress.Save(ctx, session); err != nil {
		return nil, NewCollaboratorError("failed to save booking session", err)
	}
	return session, nil
}
