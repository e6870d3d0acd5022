package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yungbote/careerpath-backend/internal/domain"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Message is the text safe to show a client. Store and internal failures
// never leak their cause.
func (e *Error) Message() string {
	if e == nil {
		return "unknown error"
	}
	if e.Status >= http.StatusInternalServerError {
		if e.Status == http.StatusServiceUnavailable {
			return "service temporarily unavailable"
		}
		return "internal error"
	}
	if msg := domain.MessageOf(e.Err); msg != "" {
		return msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

// FromError maps a classified error onto an HTTP status and public code.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	switch domain.CodeOf(err) {
	case domain.CodeValidation:
		return New(http.StatusBadRequest, "validation", err)
	case domain.CodeUnauthorized:
		return New(http.StatusUnauthorized, "unauthorized", err)
	case domain.CodeNotFound:
		return New(http.StatusNotFound, "not_found", err)
	case domain.CodeConflict:
		return New(http.StatusConflict, "conflict", err)
	case domain.CodeDegenerateVector:
		return New(http.StatusUnprocessableEntity, "insufficient_data", err)
	case domain.CodeDataAccess:
		return New(http.StatusServiceUnavailable, "data_access", err)
	default:
		return New(http.StatusInternalServerError, "internal", err)
	}
}
