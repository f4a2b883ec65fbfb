// Package failure defines the closed set of error kinds a processing step can report.
package failure

import (
	"fmt"
	"net/http"

	"github.com/isometry/gh-jira-bridge/internal/models"
	"github.com/pkg/errors"
)

// Kind classifies a step failure.
type Kind int

const (
	// Configuration is reported when required settings are missing.
	Configuration Kind = iota + 1
	// Validation is reported when the request is missing required data.
	Validation
	// Authentication is reported when the request signature does not match.
	Authentication
	// ExternalService is reported for any failure building or sending the Jira request.
	ExternalService
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Validation:
		return "validation"
	case Authentication:
		return "authentication"
	case ExternalService:
		return "external-service"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StatusCode maps the kind onto the status reported in the step result.
func (k Kind) StatusCode() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error is a step failure. Message is what the caller sees in the result body.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Result converts the failure into a step result.
func (e *Error) Result() models.Result {
	return models.Result{StatusCode: e.Kind.StatusCode(), Body: e.Message}
}

// New returns a failure of the given kind without an underlying cause.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns a failure of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf reports the kind of err, or ExternalService for errors outside the taxonomy.
func KindOf(err error) Kind {
	var fErr *Error
	if errors.As(err, &fErr) {
		return fErr.Kind
	}
	return ExternalService
}

// ToResult converts any error into a step result. Errors outside the taxonomy
// are reported as ExternalService failures carrying their own text.
func ToResult(err error) models.Result {
	var fErr *Error
	if errors.As(err, &fErr) {
		return fErr.Result()
	}
	return models.Result{StatusCode: ExternalService.StatusCode(), Body: err.Error()}
}
