package models

import (
	"strings"
	"time"
)

// DayHours is a single weekday's opening window.
type DayHours struct {
	Open   string `bson:"open" json:"open"`   // "HH:MM"
	Close  string `bson:"close" json:"close"` // "HH:MM"
	IsOpen bool   `bson:"is_open" json:"isOpen"`
}

// BusinessHours maps lowercase weekday names ("monday") to opening windows.
// A nil map means the salon has not configured hours yet and no days are
// bookable.
type BusinessHours map[string]DayHours

// WeekdayKey returns the map key for a calendar day.
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ForDay returns the hours for a calendar day, if that weekday is open.
func (h BusinessHours) ForDay(t time.Time) (DayHours, bool) {
	if h == nil {
		return DayHours{}, false
	}
	day, ok := h[WeekdayKey(t)]
	if !ok || !day.IsOpen {
		return DayHours{}, false
	}
	return day, true
}

// BrandColors is the widget theme owned by the operator dashboard.
type BrandColors struct {
	Primary   string `bson:"primary,omitempty" json:"primary,omitempty"`
	Secondary string `bson:"secondary,omitempty" json:"secondary,omitempty"`
	Accent    string `bson:"accent,omitempty" json:"accent,omitempty"`
}

// Salon holds per-salon configuration consumed by the booking widget.
type Salon struct {
	ID                 string        `bson:"id" json:"id"`
	Name               string        `bson:"name" json:"name"`
	BusinessHours      BusinessHours `bson:"business_hours,omitempty" json:"businessHours,omitempty"`
	HideStaffSelection bool          `bson:"hide_staff_selection" json:"hideStaffSelection"`
	BrandColors        BrandColors   `bson:"brand_colors,omitempty" json:"brandColors,omitempty"`
	DashboardKeyHash   string        `bson:"dashboard_key_hash,omitempty" json:"-"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updatedAt"`
}
