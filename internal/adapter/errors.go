package adapter

import "errors"

// Sentinel errors mapped from backend status classifiers. [APIError]
// unwraps to one of these, so errors.Is works across the whole client.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("invalid data")
	ErrInternalServerError = errors.New("internal server error")

	// ErrSemesterClosed marks a 409 whose structured code (or, for older
	// backends, message wording) says the semester is not open for group
	// enrollment. Per-semester fetches downgrade it to an empty result.
	ErrSemesterClosed = errors.New("semester not open for enrollment")

	// ErrNoCredentials is returned when an access token is required but
	// neither a cached pair nor a stored session is available.
	ErrNoCredentials = errors.New("no credentials available")
)
