package models

// DashboardSummary is the single-call admin overview.
type DashboardSummary struct {
	TotalBookings     int64 `json:"total_bookings"`
	TodaysBookings    int64 `json:"todays_bookings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	CancelledBookings int64 `json:"cancelled_bookings"`
	ActiveServices    int64 `json:"active_services_count"`
	ActiveStaff       int64 `json:"active_staff_count"`
}

// DashboardStats is the extended statistics payload.
type DashboardStats struct {
	Customers struct {
		Total int64 `json:"total"`
	} `json:"customers"`
	Services struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"services"`
	Staff struct {
		Active int64 `json:"active"`
	} `json:"staff"`
	Bookings struct {
		Total     int64 `json:"total"`
		Pending   int64 `json:"pending"`
		Confirmed int64 `json:"confirmed"`
		Completed int64 `json:"completed"`
		Cancelled int64 `json:"cancelled"`
		Today     int64 `json:"today"`
	} `json:"bookings"`
	Revenue struct {
		Total     float64 `json:"total"`
		ThisMonth float64 `json:"this_month"`
	} `json:"revenue"`
	Discounts struct {
		Active int64 `json:"active"`
	} `json:"discounts"`
}

// ServiceRevenue is one row of the revenue-by-service breakdown.
type ServiceRevenue struct {
	ServiceID    string  `bson:"_id" json:"service_id"`
	ServiceTitle string  `bson:"service_title" json:"service_title"`
	TotalRevenue float64 `bson:"total_revenue" json:"total_revenue"`
	BookingCount int64   `bson:"booking_count" json:"booking_count"`
}

// DailyBookings is one row of the bookings-by-date series. Revenue only
// counts Completed bookings.
type DailyBookings struct {
	Date    string  `bson:"_id" json:"date"`
	Count   int64   `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// TopService is one row of the most-booked services ranking.
type TopService struct {
	ServiceID    string `bson:"_id" json:"service_id"`
	ServiceTitle string `bson:"service_title" json:"service_title"`
	BookingCount int64  `bson:"booking_count" json:"booking_count"`
}
