// Package notify is the user-facing notification sink invoked by store
// actions on success and failure. It is a pure output boundary: nothing
// in the client consumes a return value from it, so alternative
// implementations (TUI toasts, desktop notifications) can be swapped in
// without touching the stores.
package notify

import (
	"fmt"

	"github.com/hdngo/thesisdesk/internal/logger"
)

// Notifier receives one notification per completed store action.
type Notifier interface {
	// Success reports a completed operation.
	Success(title, message string)

	// Error reports a failed operation. title comes from ErrorTitle.
	Error(title, message string)
}

// ErrorTitle maps a status classifier to the notification title shown
// to the user. Behavior never depends on the title; it is presentation
// only.
func ErrorTitle(statusCode int) string {
	switch statusCode {
	case 400:
		return "Validation Error"
	case 409:
		return "Conflict Error"
	case 422:
		return "Invalid Data"
	default:
		return fmt.Sprintf("Error %d", statusCode)
	}
}

type logNotifier struct {
	log *logger.Logger
}

// NewLogNotifier returns a Notifier that writes notifications to the
// structured log. It is the default sink for headless CLI runs.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Success(title, message string) {
	n.log.Info().Str("title", title).Msg(message)
}

func (n *logNotifier) Error(title, message string) {
	n.log.Error().Str("title", title).Msg(message)
}

// Nop returns a Notifier that discards everything. Intended for tests.
func Nop() Notifier {
	return nopNotifier{}
}

type nopNotifier struct{}

func (nopNotifier) Success(string, string) {}
func (nopNotifier) Error(string, string)   {}
