package models

import "time"

// ChecklistItem is a single review criterion inside a checklist.
type ChecklistItem struct {
	// Title is the criterion text shown to the reviewer.
	Title string `json:"title"`

	// Done reports whether the reviewer has marked the criterion as met.
	Done bool `json:"done"`
}

// Checklist represents a review checklist attached to a milestone. A
// lecturer walks through the items when grading a submission.
type Checklist struct {
	ID string `json:"id"`

	// MilestoneID is the milestone the checklist reviews.
	MilestoneID string `json:"milestone_id"`

	Title string `json:"title"`

	Items []ChecklistItem `json:"items"`

	// Completed is set once every item is done and the review is closed.
	Completed bool `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the checklist.
func (c Checklist) RecordID() string { return c.ID }
