package models

import "time"

// Service is a bookable salon service.
type Service struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salon_id" json:"salonId"`
	Name      string    `bson:"name" json:"name"`
	Duration  string    `bson:"duration" json:"duration"` // minutes; free text such as "45" or "30-45 min"
	Price     float64   `bson:"price" json:"price"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
