package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies every failure that leaves a service.
type ErrorCode string

const (
	CodeValidation       ErrorCode = "validation"
	CodeNotFound         ErrorCode = "not_found"
	CodeConflict         ErrorCode = "conflict"
	CodeDataAccess       ErrorCode = "data_access"
	CodeDegenerateVector ErrorCode = "degenerate_vector"
	CodeUnauthorized     ErrorCode = "unauthorized"
	CodeInternal         ErrorCode = "internal"
)

// Error is the canonical classified error.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates err with code. An already classified error keeps its code.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return NewError(code, op, err.Error(), err)
}

func Validation(op, message string) error { return NewError(CodeValidation, op, message, nil) }
func NotFound(op, message string) error   { return NewError(CodeNotFound, op, message, nil) }
func Conflict(op, message string) error   { return NewError(CodeConflict, op, message, nil) }

func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func CodeOf(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// MessageOf returns the classified message, or "" for unclassified errors.
func MessageOf(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Message
}
