package booking

import (
	"strings"
	"time"

	"glowdesk/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, raw)
}

func validClock(raw string) bool {
	_, err := time.Parse(clockLayout, raw)
	return err == nil
}

// validateCustomerInfo checks the contact details collected at the info
// step. The phone check is deliberately loose; salons serve customers with
// numbers in many formats, so only length and character class are enforced.
func validateCustomerInfo(info models.CustomerInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return NewValidationError("name is required")
	}
	if !validPhone(info.Phone) {
		return NewValidationError("a valid phone number is required")
	}
	return nil
}

func validPhone(raw string) bool {
	digits := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
