package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"glowdesk/models"
)

// memProgress is an in-memory ProgressStore that round-trips sessions
// through JSON the way the Redis store does.
type memProgress struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemProgress() *memProgress {
	return &memProgress{m: make(map[string][]byte)}
}

func (p *memProgress) Load(_ context.Context, salonID, sessionID string) (*models.BookingSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.m[progressKey(salonID, sessionID)]
	if !ok {
		return nil, nil
	}
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, nil
	}
	if !restorable(&session, salonID, sessionID) {
		return nil, nil
	}
	return &session, nil
}

func (p *memProgress) Save(_ context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[progressKey(session.SalonID, session.SessionID)] = data
	return nil
}

func (p *memProgress) Clear(_ context.Context, salonID, sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.m, progressKey(salonID, sessionID))
	return nil
}

// put stores a raw record, bypassing Save's marshalling.
func (p *memProgress) put(salonID, sessionID string, raw []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[progressKey(salonID, sessionID)] = raw
}

type fakeSalonRepo struct {
	salon *models.Salon
}

func (r *fakeSalonRepo) GetByID(id string) (*models.Salon, error) {
	if r.salon != nil && r.salon.ID == id {
		return r.salon, nil
	}
	return nil, nil
}
func (r *fakeSalonRepo) Create(*models.Salon) error { return nil }
func (r *fakeSalonRepo) Update(*models.Salon) error { return nil }
func (r *fakeSalonRepo) UpdateBusinessHours(string, models.BusinessHours) error {
	return nil
}
func (r *fakeSalonRepo) UpdateBranding(string, models.BrandColors) error { return nil }

type fakeCatalogRepo struct {
	services []models.Service
}

func (r *fakeCatalogRepo) ListServices(salonID string) ([]models.Service, error) {
	return r.services, nil
}
func (r *fakeCatalogRepo) GetServiceByName(salonID, name string) (*models.Service, error) {
	for _, svc := range r.services {
		if svc.Name == name {
			return &svc, nil
		}
	}
	return nil, nil
}
func (r *fakeCatalogRepo) GetServiceByID(salonID, id string) (*models.Service, error) {
	for _, svc := range r.services {
		if svc.ID == id {
			return &svc, nil
		}
	}
	return nil, nil
}
func (r *fakeCatalogRepo) Create(*models.Service) error     { return nil }
func (r *fakeCatalogRepo) Update(*models.Service) error     { return nil }
func (r *fakeCatalogRepo) Delete(string, string) error      { return nil }
func (r *fakeCatalogRepo) Rename(string, string, string) (string, error) {
	return "", nil
}

type fakeStaffRepo struct {
	roster []models.Staff
}

func (r *fakeStaffRepo) ListStaff(salonID string) ([]models.Staff, error) {
	return r.roster, nil
}
func (r *fakeStaffRepo) GetByID(salonID, id string) (*models.Staff, error) {
	for _, member := range r.roster {
		if member.ID == id {
			return &member, nil
		}
	}
	return nil, nil
}
func (r *fakeStaffRepo) Create(*models.Staff) error  { return nil }
func (r *fakeStaffRepo) Update(*models.Staff) error  { return nil }
func (r *fakeStaffRepo) Delete(string, string) error { return nil }
func (r *fakeStaffRepo) RenameServiceRefs(string, string, string) (int64, error) {
	return 0, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (r *fakeBookingRepo) ListForDay(salonID string, day time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	var out []models.Booking
	for _, b := range r.bookings {
		if b.SalonID == salonID && !b.Time.Before(start) && b.Time.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}
func (r *fakeBookingRepo) ListForSalon(salonID string, limit int64) ([]models.Booking, error) {
	return r.bookings, nil
}
func (r *fakeBookingRepo) GetByID(salonID, id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, nil
}
func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("bk-%d", len(r.bookings)+1)
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}
func (r *fakeBookingRepo) UpdateStatus(salonID, id, status string) error { return nil }
func (r *fakeBookingRepo) CompletePast(cutoff time.Time) (int64, error) { return 0, nil }
