package models

import "time"

// SemesterStatus describes the lifecycle state of a capstone semester.
// Group formation is only open while the semester is ongoing; the backend
// rejects per-semester fetches outside that window with a structured
// conflict (see adapter.ErrSemesterClosed).
type SemesterStatus string

const (
	SemesterPreparing SemesterStatus = "preparing"
	SemesterOngoing   SemesterStatus = "ongoing"
	SemesterEnded     SemesterStatus = "ended"
)

// Semester represents one capstone term. Semesters act as the parent
// scope for groups and enrolled students.
type Semester struct {
	ID string `json:"id"`

	// Name is the human-readable term label (e.g. "Spring 2026").
	Name string `json:"name"`

	Status SemesterStatus `json:"status"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// RecordID returns the backend identifier of the semester.
func (s Semester) RecordID() string { return s.ID }
