package models

import "time"

// MilestoneStatus describes the progress state of a milestone.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneSubmitted MilestoneStatus = "submitted"
	MilestoneReviewed  MilestoneStatus = "reviewed"
	MilestoneOverdue   MilestoneStatus = "overdue"
)

// Milestone represents a scheduled deliverable a group must submit during
// the semester (e.g. report 1, prototype demo, final defence).
type Milestone struct {
	ID string `json:"id"`

	// GroupID is the group the milestone belongs to.
	GroupID string `json:"group_id"`

	Title string `json:"title"`

	// Deadline is the submission cut-off.
	Deadline time.Time `json:"deadline"`

	Status MilestoneStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the milestone.
func (m Milestone) RecordID() string { return m.ID }
