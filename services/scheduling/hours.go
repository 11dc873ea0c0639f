package scheduling

import (
	"time"

	"glowdesk/models"
)

// LookaheadDays is the rolling window of days offered to customers.
const LookaheadDays = 14

// AvailableDays resolves the business hours configuration into the concrete
// bookable calendar days of the window starting weekOffset weeks after from.
// Days whose weekday is closed are skipped. A salon without configured hours
// has no bookable days; that is not an error.
func AvailableDays(hours models.BusinessHours, from time.Time, weekOffset int) []time.Time {
	if hours == nil {
		return nil
	}

	windowStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	windowStart = windowStart.AddDate(0, 0, weekOffset*7)

	var days []time.Time
	for i := 0; i < LookaheadDays; i++ {
		day := windowStart.AddDate(0, 0, i)
		if _, open := hours.ForDay(day); open {
			days = append(days, day)
		}
	}
	return days
}
