package models

import "time"

// Attendance statuses.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half-day"
)

// ValidAttendanceStatus reports whether s is a known attendance status.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceHalfDay:
		return true
	}
	return false
}

// Attendance is one staff member's record for one calendar date. The
// (staff_id, date) pair is unique: a second check-in on the same day is
// rejected.
type Attendance struct {
	ID               string    `bson:"id" json:"id"`
	StaffID          string    `bson:"staff_id" json:"staff_id"`
	StaffName        string    `bson:"staff_name" json:"staff_name"`
	Date             string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	CheckInTime      string    `bson:"check_in_time" json:"check_in_time"`
	CheckOutTime     *string   `bson:"check_out_time" json:"check_out_time"`
	AttendanceStatus string    `bson:"attendance_status" json:"attendance_status"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}
