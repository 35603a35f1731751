// Package repository defines error values reused across the entity
// repositories so that service and handler layers can distinguish
// failure causes without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique index, such
// as a second booking for an occupied slot or a second attendance record
// for the same staff and date.
var ErrDuplicate = errors.New("duplicate record")
