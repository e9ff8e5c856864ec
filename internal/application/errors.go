package application

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrEmailTaken is returned when registration targets an email that
	// already has an account.
	ErrEmailTaken = errors.New("application: email already registered")
	// ErrInvalidCredentials is returned when login fails, whether the email,
	// the password, or the verification state is at fault.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
	// ErrNoPendingVerification is returned when verification runs without a
	// pending-verification marker or a matching account. Callers treat it as
	// a no-op.
	ErrNoPendingVerification = errors.New("application: no pending verification")
	// ErrAnonymous is returned when an operation requires an authenticated
	// session and none is active.
	ErrAnonymous = errors.New("application: not logged in")
	// ErrUnknownSection is returned when navigation targets a section outside
	// the closed set.
	ErrUnknownSection = errors.New("application: unknown section")
)

// ValidationError captures field level validation issues that callers can
// surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
