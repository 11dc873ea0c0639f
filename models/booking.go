package models

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Booking is a placed appointment. Service is stored by name, matching the
// denormalized staff qualification lists. StaffAssigned is a staff id or
// AnyStaff.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	SalonID       string    `bson:"salon_id" json:"salonId"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerPhone string    `bson:"customer_phone" json:"customerPhone"`
	Service       string    `bson:"service" json:"service"`
	Time          time.Time `bson:"time" json:"time"`
	StaffAssigned string    `bson:"staff_assigned" json:"staffAssigned"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// Occupies reports whether this booking consumes the given staff member's
// capacity. Explicit assignments bind a single member; "any" assignments
// occupy every member qualified for the booked service, because whichever
// of them ends up servicing it must be free.
func (b Booking) Occupies(member Staff) bool {
	if b.StaffAssigned == AnyStaff {
		return member.Performs(b.Service)
	}
	return b.StaffAssigned == member.ID
}
