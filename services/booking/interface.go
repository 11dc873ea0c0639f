package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "glowdesk/database/repository/bookings"
	catalogRepo "glowdesk/database/repository/catalog"
	salonRepo "glowdesk/database/repository/salon"
	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"

	"go.uber.org/zap"
)

// BookingFlowService drives the customer-facing booking workflow: a
// seven-step state machine whose session state lives in the progress store
// between requests. All failures surface as FlowError values so callers can
// offer a retry instead of dead-ending the customer.
type BookingFlowService interface {
	// StartSession resumes the stored session for this salon/session pair,
	// or opens a fresh one at the service step. Empty sessionID mints a new
	// session id.
	StartSession(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error)
	// Advance applies one selection event to the session and moves the step
	// pointer forward. The event kind must match the current step.
	Advance(ctx context.Context, salonID, sessionID string, event Event) (*models.BookingSession, error)
	// GoBack moves one step backward, keeping the draft intact. Backing out
	// of the first step abandons the session and returns (nil, nil).
	GoBack(ctx context.Context, salonID, sessionID string) (*models.BookingSession, error)

	AvailableDays(ctx context.Context, salonID string, weekOffset int) ([]string, error)
	// AvailableSlots lists the bookable "HH:MM" starts for the session's
	// selected service and date, computed against a fresh booking fetch.
	AvailableSlots(ctx context.Context, salonID, sessionID string) ([]string, error)
	// SlotsForDay is the session-free variant for explicit query parameters.
	SlotsForDay(ctx context.Context, salonID, serviceName, date, staffID string) ([]string, error)
	// StaffOptions lists the roster members qualified for the session's
	// selected service.
	StaffOptions(ctx context.Context, salonID, sessionID string) ([]models.Staff, error)

	// Commit places the booking after a final availability re-check, clears
	// the session and returns the created booking. A concurrent commit for
	// the same session is rejected.
	Commit(ctx context.Context, salonID, sessionID string) (*models.Booking, error)
}

// TimerFactory schedules the deferred step move that follows a successful
// selection. The returned stop cancels the pending move and reports whether
// it was cancelled before firing. The zero delay fires synchronously.
type TimerFactory func(d time.Duration, fn func()) (stop func() bool)

// StdTimerFactory backs TimerFactory with time.AfterFunc.
func StdTimerFactory(d time.Duration, fn func()) func() bool {
	if d <= 0 {
		fn()
		return func() bool { return false }
	}
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// DefaultBookingFlowService is the production implementation, wired to the
// Mongo repositories and the Redis progress store.
type DefaultBookingFlowService struct {
	SalonRepo   salonRepo.SalonRepository
	CatalogRepo catalogRepo.CatalogRepository
	StaffRepo   staffRepo.StaffRepository
	BookingRepo bookingRepo.BookingRepository
	Progress    ProgressStore

	// AdvanceDelay is how long the step pointer lingers after a selection
	// before moving on, mirroring the widget's brief visual confirmation.
	// Zero moves immediately.
	AdvanceDelay time.Duration
	Timer        TimerFactory
	Clock        func() time.Time
	Logger       *zap.Logger

	mu      sync.Mutex
	pending map[string]func() bool
	commits map[string]*sync.Mutex
}

func NewDefaultBookingFlowService(
	salons salonRepo.SalonRepository,
	catalog catalogRepo.CatalogRepository,
	staff staffRepo.StaffRepository,
	bookings bookingRepo.BookingRepository,
	progress ProgressStore,
	advanceDelay time.Duration,
	logger *zap.Logger,
) *DefaultBookingFlowService {
	return &DefaultBookingFlowService{
		SalonRepo:    salons,
		CatalogRepo:  catalog,
		StaffRepo:    staff,
		BookingRepo:  bookings,
		Progress:     progress,
		AdvanceDelay: advanceDelay,
		Logger:       logger,
		pending:      make(map[string]func() bool),
		commits:      make(map[string]*sync.Mutex),
	}
}

func (s *DefaultBookingFlowService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultBookingFlowService) timer() TimerFactory {
	if s.Timer != nil {
		return s.Timer
	}
	return StdTimerFactory
}

func (s *DefaultBookingFlowService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

func sessionKey(salonID, sessionID string) string {
	return salonID + ":" + sessionID
}
