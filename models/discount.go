package models

import "time"

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// Discount is a reduction applied to a service's base price for
// bookings dated inside [StartDate, EndDate] (inclusive calendar dates,
// "YYYY-MM-DD").
type Discount struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"service_id" json:"service_id"`
	DiscountType  string    `bson:"discount_type" json:"discount_type"`
	DiscountValue float64   `bson:"discount_value" json:"discount_value"`
	StartDate     string    `bson:"start_date" json:"start_date"`
	EndDate       string    `bson:"end_date" json:"end_date"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	ServiceTitle  string    `bson:"-" json:"service_title,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
