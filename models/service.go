package models

import "time"

// Service statuses.
const (
	ServiceActive   = "Active"
	ServiceInactive = "Inactive"
)

// Service is a bookable salon service.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	BasePrice   float64   `bson:"base_price" json:"base_price"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ServiceView is a Service enriched with the discount in effect today,
// as returned by the public catalog endpoints.
type ServiceView struct {
	Service       `bson:",inline"`
	HasDiscount   bool    `json:"has_discount"`
	DiscountType  string  `json:"discount_type,omitempty"`
	DiscountValue float64 `json:"discount_value,omitempty"`
	FinalPrice    float64 `json:"final_price"`
}
