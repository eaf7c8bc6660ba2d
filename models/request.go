package models

import "time"

// RequestType distinguishes the kinds of workflow requests students file.
type RequestType string

const (
	RequestJoinGroup   RequestType = "join_group"
	RequestLeaveGroup  RequestType = "leave_group"
	RequestTopicChange RequestType = "topic_change"
)

// RequestStatus describes the approval state of a request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDeclined RequestStatus = "declined"
)

// Request represents a student-initiated workflow request (joining or
// leaving a group, changing topic) awaiting moderation.
type Request struct {
	ID string `json:"id"`

	// StudentID is the requesting student.
	StudentID string `json:"student_id"`

	// GroupID is the target group, where applicable.
	GroupID string `json:"group_id,omitempty"`

	Type   RequestType   `json:"type"`
	Status RequestStatus `json:"status"`

	// Message is an optional note from the student to the moderator.
	Message string `json:"message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// RecordID returns the backend identifier of the request.
func (r Request) RecordID() string { return r.ID }
