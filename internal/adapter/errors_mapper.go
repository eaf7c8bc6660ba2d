package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hdngo/thesisdesk/models"
)

// APIError is the normalized failure shape every caller above the
// adapter consumes. It carries the backend's status classifier, the
// optional machine-readable code, and the human-readable message.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status classifier onto the package sentinels so
// errors.Is keeps working through wrapping.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}

// StatusOf extracts the status classifier from err, or 0 for transport
// failures that never reached the backend.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOf extracts the backend message from err, falling back to the
// plain error text for transport failures.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// mapResponseError converts a non-2xx response, or a 2xx response whose
// envelope carries the error arm, into an *APIError (nil when the
// response is a business success). A conflict that marks the semester as
// closed for enrollment is additionally wrapped with [ErrSemesterClosed].
func mapResponseError(resp *resty.Response) error {
	apiErr := extractAPIError(resp)
	if apiErr == nil {
		return nil
	}

	if semesterClosed(apiErr) {
		return fmt.Errorf("%w: %w", ErrSemesterClosed, apiErr)
	}
	return apiErr
}

func extractAPIError(resp *resty.Response) *APIError {
	var env models.Envelope
	decoded := json.Unmarshal(resp.Body(), &env) == nil

	if decoded && env.Error != nil {
		status := env.Error.StatusCode
		if status == 0 {
			status = resp.StatusCode()
		}
		return &APIError{StatusCode: status, Code: env.Error.Code, Message: env.Error.Message}
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		if decoded && !env.Success {
			// failure envelope missing its error arm
			return &APIError{
				StatusCode: resp.StatusCode(),
				Message:    "backend reported failure without details",
			}
		}
		// 2xx with a success envelope (or a non-JSON body)
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}

// semesterClosed recognises the "semester not enrollable" conflict. The
// structured code is authoritative; the message substrings are a legacy
// fallback for backend builds that predate error codes.
func semesterClosed(e *APIError) bool {
	switch e.Code {
	case models.CodeSemesterNotEnrollable, models.CodeSemesterEnded:
		return true
	}
	if e.StatusCode != http.StatusConflict {
		return false
	}
	return strings.Contains(e.Message, "NotYet") || strings.Contains(e.Message, "End")
}
