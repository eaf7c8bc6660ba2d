package models

import "encoding/json"

// Envelope is the uniform JSON envelope returned by every backend
// endpoint. A business-level failure may arrive inside a 2xx response, so
// transport status alone is not enough to classify a call; the adapter
// always decodes the envelope before handing data to callers.
type Envelope struct {
	// Success discriminates the two arms of the envelope.
	Success bool `json:"success"`

	// Data holds the payload when Success is true. Left as raw JSON so
	// the adapter can decode it into the caller's typed destination.
	Data json.RawMessage `json:"data,omitempty"`

	// Error holds the structured failure when Success is false.
	Error *RemoteError `json:"error,omitempty"`
}

// RemoteError is the structured error arm of the backend envelope.
type RemoteError struct {
	// Message is the human-readable failure description.
	Message string `json:"message"`

	// StatusCode is the business status classifier. It usually matches
	// the HTTP status but is carried separately because business errors
	// can be embedded in 2xx envelopes.
	StatusCode int `json:"statusCode"`

	// Code is an optional machine-readable error code (e.g.
	// "SEMESTER_NOT_ENROLLABLE"). Older backend builds omit it and only
	// the message wording is available.
	Code string `json:"code,omitempty"`
}

// Remote error codes the client recognises.
const (
	// CodeSemesterNotEnrollable is returned when a per-semester fetch is
	// attempted before the semester has opened for group formation.
	CodeSemesterNotEnrollable = "SEMESTER_NOT_ENROLLABLE"

	// CodeSemesterEnded is returned when a per-semester fetch is
	// attempted after the semester has closed.
	CodeSemesterEnded = "SEMESTER_ENDED"
)
