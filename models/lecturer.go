package models

import "time"

// Lecturer represents a supervising lecturer account.
type Lecturer struct {
	ID string `json:"id"`

	// LecturerCode is the staff number issued by the university.
	LecturerCode string `json:"lecturer_code"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`

	// Department is the faculty department the lecturer belongs to.
	Department string `json:"department"`

	// GroupQuota is the maximum number of capstone groups the lecturer
	// may supervise in one semester.
	GroupQuota int `json:"group_quota"`

	// Active reports whether the account is enabled.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the lecturer.
func (l Lecturer) RecordID() string { return l.ID }
