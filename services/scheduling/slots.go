package scheduling

import (
	"iter"
	"time"

	"glowdesk/models"
)

// SlotGranularity is the fixed spacing between candidate start times.
const SlotGranularity = 30 * time.Minute

const clockLayout = "15:04"

// DaySlots returns the candidate start times ("HH:MM") for one day's opening
// window, every 30 minutes from open up to but excluding close. A slot only
// has to START before close; a long service starting on the last slot may run
// past closing time, which mirrors how salons actually take late bookings.
// A closed or malformed window yields an empty sequence.
func DaySlots(day models.DayHours) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !day.IsOpen {
			return
		}
		open, err := time.Parse(clockLayout, day.Open)
		if err != nil {
			return
		}
		close, err := time.Parse(clockLayout, day.Close)
		if err != nil {
			return
		}
		for t := open; t.Before(close); t = t.Add(SlotGranularity) {
			if !yield(t.Format(clockLayout)) {
				return
			}
		}
	}
}

// CombineDayTime anchors a "HH:MM" clock value on a calendar day, in that
// day's location.
func CombineDayTime(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
