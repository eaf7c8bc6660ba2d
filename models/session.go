package models

import "time"

// Session is the locally persisted login state: the credential pair plus
// the "remember me" preference that selected its storage location.
type Session struct {
	// Tokens is the credential pair issued at login or by the last
	// refresh.
	Tokens TokenPair `json:"tokens"`

	// Remember records whether the user asked for a persistent session.
	// A remembered session survives process restarts; otherwise the
	// credentials live only in memory.
	Remember bool `json:"remember"`

	// SavedAt is when the session was last written.
	SavedAt time.Time `json:"saved_at"`
}
