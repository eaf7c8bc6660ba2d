package models

import "time"

// GroupStatus describes the lifecycle state of a capstone group.
type GroupStatus string

const (
	GroupForming   GroupStatus = "forming"
	GroupConfirmed GroupStatus = "confirmed"
	GroupAssigned  GroupStatus = "assigned"
	GroupDisbanded GroupStatus = "disbanded"
)

// Group represents a capstone project group formed by students within a
// semester. A group may have a thesis assigned once it is confirmed.
type Group struct {
	ID string `json:"id"`

	Name string `json:"name"`

	// SemesterID is the semester the group was formed in. Groups are
	// always fetched per semester.
	SemesterID string `json:"semester_id"`

	// LeaderID is the student ID of the group leader.
	LeaderID string `json:"leader_id"`

	// MemberIDs lists the student IDs of all members, leader included.
	MemberIDs []string `json:"member_ids"`

	// ThesisID is the assigned thesis, empty until assignment.
	ThesisID string `json:"thesis_id,omitempty"`

	Status GroupStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the group.
func (g Group) RecordID() string { return g.ID }
