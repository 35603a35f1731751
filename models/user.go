package models

import "time"

// Roles recognised by the auth layer.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User represents an account in the users collection. Admins carry a
// username, customers carry a display name; both live in the same
// collection and are distinguished by Role.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Username     string    `bson:"username,omitempty" json:"username,omitempty"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
