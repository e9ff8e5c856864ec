package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", ErrNotFound, "not_found"},
		{"email taken", ErrEmailTaken, "email_taken"},
		{"invalid credentials", ErrInvalidCredentials, "invalid_credentials"},
		{"no pending verification", ErrNoPendingVerification, "no_pending_verification"},
		{"anonymous", ErrAnonymous, "anonymous"},
		{"unknown section", ErrUnknownSection, "unknown_section"},
		{"wrapped sentinel", fmt.Errorf("show: %w", ErrUnknownSection), "unknown_section"},
		{"validation", &ValidationError{FieldErrors: map[string]string{"email": "required"}}, "validation"},
		{"unexpected", errors.New("boom"), "unexpected"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ErrorKind(tc.err); got != tc.want {
				t.Fatalf("ErrorKind(%v) = %q, expected %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	var empty *ValidationError
	if empty.HasErrors() {
		t.Fatal("expected a nil ValidationError to report no errors")
	}

	vErr := &ValidationError{}
	if vErr.HasErrors() {
		t.Fatal("expected a fresh ValidationError to report no errors")
	}

	vErr.add("email", "email is required")
	if !vErr.HasErrors() {
		t.Fatal("expected HasErrors after recording a field error")
	}
	if vErr.FieldErrors["email"] != "email is required" {
		t.Fatalf("expected the recorded message, got %q", vErr.FieldErrors["email"])
	}
}
