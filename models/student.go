package models

import "time"

// Student represents a student account enrolled in a capstone semester.
type Student struct {
	// ID is the unique string identifier assigned by the backend.
	ID string `json:"id"`

	// StudentCode is the university-issued student number (e.g. "SE150123").
	StudentCode string `json:"student_code"`

	// FullName is the display name shown in listings.
	FullName string `json:"full_name"`

	// Email is the institutional e-mail address.
	Email string `json:"email"`

	// Major is the study programme the student belongs to.
	Major string `json:"major"`

	// SemesterID links the student to the capstone semester they are
	// enrolled in.
	SemesterID string `json:"semester_id"`

	// Active reports whether the account is enabled. Toggled by
	// administrators without deleting the record.
	Active bool `json:"active"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the student.
func (s Student) RecordID() string { return s.ID }
