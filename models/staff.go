package models

import "time"

// AnyStaff is the sentinel staff assignment meaning "whoever is free".
const AnyStaff = "any"

// Staff is a salon employee. Services holds the names (not ids) of the
// services the employee is qualified to perform; service renames are
// cascaded into this array by the catalog service.
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salon_id" json:"salonId"`
	Name      string    `bson:"name" json:"name"`
	Services  []string  `bson:"services" json:"services"`
	PhotoURL  string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Performs reports whether the employee is qualified for the named service.
// The match is by exact name; a stale name after a missed rename cascade
// simply yields no match.
func (s Staff) Performs(serviceName string) bool {
	for _, name := range s.Services {
		if name == serviceName {
			return true
		}
	}
	return false
}
