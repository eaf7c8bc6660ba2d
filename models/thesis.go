package models

import "time"

// ThesisStatus describes the proposal lifecycle of a thesis topic.
type ThesisStatus string

const (
	ThesisProposed ThesisStatus = "proposed"
	ThesisApproved ThesisStatus = "approved"
	ThesisRejected ThesisStatus = "rejected"
	ThesisTaken    ThesisStatus = "taken"
)

// Thesis represents a thesis topic proposed by a lecturer and assignable
// to a group.
type Thesis struct {
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// LecturerID is the proposing (and supervising) lecturer.
	LecturerID string `json:"lecturer_id"`

	// SemesterID scopes the topic to a semester.
	SemesterID string `json:"semester_id"`

	Status ThesisStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the thesis.
func (t Thesis) RecordID() string { return t.ID }
