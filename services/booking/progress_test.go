package booking

import (
	"testing"

	"glowdesk/models"

	"github.com/stretchr/testify/assert"
)

func TestProgressKey(t *testing.T) {
	assert.Equal(t, "progress:salon-1:sess-9", progressKey("salon-1", "sess-9"))
}

func TestRestorable(t *testing.T) {
	base := models.BookingSession{
		SessionID: "sess-1",
		SalonID:   "salon-1",
		Step:      StepTime,
		Draft:     models.BookingDraft{SelectedService: "Cut & Style", SelectedDate: "2026-09-07"},
	}

	tests := []struct {
		name   string
		mutate func(*models.BookingSession)
		want   bool
	}{
		{"valid mid-flow session", func(*models.BookingSession) {}, true},
		{"no date yet", func(s *models.BookingSession) { s.Draft.SelectedDate = ""; s.Step = StepDate }, true},
		{"unknown step", func(s *models.BookingSession) { s.Step = "teleport" }, false},
		{"terminal step", func(s *models.BookingSession) { s.Step = StepSuccess }, false},
		{"foreign salon", func(s *models.BookingSession) { s.SalonID = "salon-2" }, false},
		{"foreign session id", func(s *models.BookingSession) { s.SessionID = "sess-2" }, false},
		{"garbled date", func(s *models.BookingSession) { s.Draft.SelectedDate = "next tuesday" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := base
			tt.mutate(&session)
			assert.Equal(t, tt.want, restorable(&session, "salon-1", "sess-1"))
		})
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, validPhone("+1 555 123 4567"))
	assert.True(t, validPhone("555-123-4567"))
	assert.True(t, validPhone("(020) 7946 0958"))
	assert.False(t, validPhone("12345"), "too short")
	assert.False(t, validPhone("call me maybe"))
	assert.False(t, validPhone("5551+234567"), "plus only leads")
}
