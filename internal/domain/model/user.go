package model

import (
	"strings"
	"time"
)

// User represents a registered account holder.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	LastLogin    *time.Time
	CreatedAt    time.Time
}

// FullName returns the display name composed of first and last name.
// Empty components collapse without leaving stray spaces.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
