package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapKeepsExistingCode(t *testing.T) {
	inner := Conflict("advisory.Book", "slot already taken")
	wrapped := Wrap(CodeDataAccess, "outer", fmt.Errorf("tx: %w", inner))
	if got := CodeOf(wrapped); got != CodeConflict {
		t.Fatalf("CodeOf=%q, want %q", got, CodeConflict)
	}
	if got := MessageOf(wrapped); got != "slot already taken" {
		t.Fatalf("MessageOf=%q", got)
	}
}

func TestWrapClassifiesPlainErrors(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDataAccess, "answers.List", cause)
	if !IsCode(err, CodeDataAccess) {
		t.Fatalf("expected data_access, got %q", CodeOf(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause should stay reachable through Unwrap")
	}
	if Wrap(CodeInternal, "x", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}

func TestErrorString(t *testing.T) {
	err := NewError(CodeValidation, "op", "bad date", nil)
	if got, want := err.Error(), "op: bad date (validation)"; got != want {
		t.Fatalf("Error()=%q, want %q", got, want)
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatalf("unclassified errors have no code")
	}
}
