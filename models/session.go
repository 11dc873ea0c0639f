package models

// CustomerInfo is the contact detail collected at the info step.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BookingDraft is the in-progress selection state of one booking session.
// Date is "YYYY-MM-DD" and Time is "HH:MM", both in the salon's local time.
type BookingDraft struct {
	SelectedService string       `json:"selectedService,omitempty"`
	SelectedDate    string       `json:"selectedDate,omitempty"`
	SelectedTime    string       `json:"selectedTime,omitempty"`
	SelectedStaff   string       `json:"selectedStaff,omitempty"` // staff id or AnyStaff
	CustomerInfo    CustomerInfo `json:"customerInfo"`
}

// BookingSession is the owned workflow state carried through the state
// machine: the draft plus the current step pointer. It lives in the
// progress cache between requests and is destroyed on successful commit.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	SalonID   string       `json:"salonId"`
	Draft     BookingDraft `json:"draft"`
	Step      string       `json:"step"`
}
