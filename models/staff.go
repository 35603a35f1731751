package models

import "time"

// Staff statuses.
const (
	StaffActive   = "Active"
	StaffInactive = "Inactive"
)

// Staff roles.
const (
	StaffStylist      = "stylist"
	StaffReceptionist = "receptionist"
	StaffManager      = "manager"
	StaffTherapist    = "therapist"
)

// ValidStaffRole reports whether r is a known staff role.
func ValidStaffRole(r string) bool {
	switch r {
	case StaffStylist, StaffReceptionist, StaffManager, StaffTherapist:
		return true
	}
	return false
}

// ShiftTimings is a staff member's daily working window.
type ShiftTimings struct {
	Start string `bson:"start,omitempty" json:"start,omitempty"` // "HH:MM"
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

// Staff is a salon employee record. Staff are soft-deleted: IsDeleted
// hides the record everywhere but the document stays in the collection.
type Staff struct {
	ID           string       `bson:"id" json:"id"`
	FullName     string       `bson:"full_name" json:"full_name"`
	Email        string       `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string       `bson:"phone" json:"phone"`
	Role         string       `bson:"role" json:"role"`
	WorkingDays  []string     `bson:"working_days,omitempty" json:"working_days,omitempty"`
	ShiftTimings ShiftTimings `bson:"shift_timings,omitempty" json:"shift_timings,omitempty"`
	Status       string       `bson:"status" json:"status"`
	IsDeleted    bool         `bson:"is_deleted" json:"is_deleted"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}
