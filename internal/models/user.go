package models

import "time"

// Role is the access profile of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID         int64
	Name       string
	Email      string
	Password   string
	Phone      string
	Role       Role
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
