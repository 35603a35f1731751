package utils

import (
	"regexp"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeSlotLayout is the wire format for booking time slots.
	TimeSlotLayout = "15:04"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	timeSlotPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidEmail performs a basic syntactic email check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTimeSlot reports whether s is a well-formed "HH:MM" time slot.
func ValidTimeSlot(s string) bool {
	return timeSlotPattern.MatchString(s)
}

// CombineDateTime merges a date and a time slot into a single local-time
// instant.
func CombineDateTime(date, timeSlot string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeSlotLayout, date+" "+timeSlot, time.Local)
}

// IsFutureDateTime reports whether date+timeSlot is strictly after now.
func IsFutureDateTime(date, timeSlot string, now time.Time) bool {
	at, err := CombineDateTime(date, timeSlot)
	if err != nil {
		return false
	}
	return at.After(now)
}
