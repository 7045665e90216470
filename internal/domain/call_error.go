package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// FailureKind tags a failed call to the transaction service.
type FailureKind int

const (
	// FailureTransport covers network errors, 5xx and unexpected payloads.
	FailureTransport FailureKind = iota
	// FailureRejected is a 4xx with a structured reason.
	FailureRejected
	// FailureImport is a 4xx upload rejection carrying row-level errors.
	FailureImport
)

func (k FailureKind) String() string {
	switch k {
	case FailureRejected:
		return "rejected"
	case FailureImport:
		return "import"
	default:
		return "transport"
	}
}

// CallError is the failure variant of a transaction service call. It is
// built once at the client boundary so callers switch on Kind only.
type CallError struct {
	Kind    FailureKind
	Status  int
	Message string
	Rows    []ImportErrorRow
	Err     error
}

func (e *CallError) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the kind sentinels.
func (e *CallError) Is(target error) bool {
	switch target {
	case ErrRequestRejected:
		return e.Kind == FailureRejected || e.Kind == FailureImport
	case ErrTransport:
		return e.Kind == FailureTransport
	}
	return false
}

// ServiceMessage returns the service-provided message, or fallback when the
// failure was not a rejection or carried no message.
func (e *CallError) ServiceMessage(fallback string) string {
	if e.Kind == FailureTransport || e.Message == "" {
		return fallback
	}
	return e.Message
}

// NewStatusError classifies a non-2xx response.
func NewStatusError(status int, message string, rows []ImportErrorRow) *CallError {
	if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
		return &CallError{Kind: FailureTransport, Status: status, Message: message}
	}
	if len(rows) > 0 {
		return &CallError{Kind: FailureImport, Status: status, Message: message, Rows: rows}
	}
	return &CallError{Kind: FailureRejected, Status: status, Message: message}
}

// NewTransportError wraps a failure that never produced a usable response.
func NewTransportError(err error) *CallError {
	return &CallError{Kind: FailureTransport, Err: err}
}

// ClassifyError returns err as a CallError, treating anything unknown as a
// transport failure.
func ClassifyError(err error) *CallError {
	if err == nil {
		return nil
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr
	}
	return NewTransportError(err)
}
