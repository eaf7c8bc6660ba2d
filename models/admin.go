package models

import "time"

// Admin represents an administrator account with access to the management
// endpoints.
type Admin struct {
	ID string `json:"id"`

	Username string `json:"username"`
	Email    string `json:"email"`

	// Role is the admin role label (e.g. "moderator", "superadmin").
	Role string `json:"role"`

	// Active reports whether the account is enabled.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the admin.
func (a Admin) RecordID() string { return a.ID }
