package models

import "time"

// Booking statuses. Completed and Cancelled are terminal.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

// Booking is a customer appointment for one service slot. BasePrice and
// FinalPrice are captured at creation time and never recomputed, even if
// the service price or discount changes later.
//
// SlotHeld backs the partial unique index on (service_id, date,
// time_slot): it is true for every non-Cancelled booking and flipped to
// false on cancellation, so at most one live booking can hold a slot.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	CustomerID      string    `bson:"customer_id" json:"customer_id"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	ServiceID       string    `bson:"service_id" json:"service_id"`
	ServiceTitle    string    `bson:"service_title" json:"service_title"`
	Date            string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	TimeSlot        string    `bson:"time_slot" json:"time_slot"` // "HH:MM"
	BasePrice       float64   `bson:"base_price" json:"base_price"`
	FinalPrice      float64   `bson:"final_price" json:"final_price"`
	DiscountApplied bool      `bson:"discount_applied" json:"discount_applied"`
	Status          string    `bson:"status" json:"status"`
	SlotHeld        bool      `bson:"slot_held" json:"-"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidBookingStatus reports whether s is one of the four known states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}
