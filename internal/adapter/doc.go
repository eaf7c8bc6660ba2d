// Package adapter provides the HTTP access layer for the thesisdesk
// backend.
//
// The central type is [Adapter], a configured resty client whose request
// hook attaches a valid bearer token to every non-auth request
// (refreshing it first when expired) and whose retry condition replays a
// request exactly once after a 401 by forcing a credential refresh. A
// failed refresh clears the stored credentials and fires the
// session-expired handler once.
//
// Every response travels through envelope normalization: callers receive
// either typed data or an *[APIError] carrying the backend's message,
// status classifier, and optional machine code. APIError unwraps to the
// sentinel values in errors.go so callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrConflict] for 409).
package adapter
