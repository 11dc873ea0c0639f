package scheduling

import "strings"

// DefaultDurationMinutes is used when a service's duration cannot be parsed.
// It matches the slot granularity, so an unparseable duration books exactly
// one slot.
const DefaultDurationMinutes = 30

// DurationMinutes extracts a minute count from a service duration value.
// Operators enter durations as plain numbers ("45"), ranges ("30-45") or
// free text ("45 min", "1h"); scheduling always uses the lower bound. An
// "h" suffix directly after the number is read as hours.
func DurationMinutes(raw string) int {
	s := strings.TrimSpace(raw)
	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if start == i {
		return DefaultDurationMinutes
	}

	n := 0
	for _, c := range s[start:i] {
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return DefaultDurationMinutes
	}

	rest := strings.TrimSpace(s[i:])
	if strings.HasPrefix(strings.ToLower(rest), "h") {
		n *= 60
	}
	return n
}
