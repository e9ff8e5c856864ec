package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
)

// AccountStore exposes the account operations required by the session service.
// Lookups are linear scans with case-sensitive, exact-match semantics.
type AccountStore interface {
	FindAccountByEmail(ctx context.Context, email string) (Account, error)
	FindAccountByCredentials(ctx context.Context, email, password string) (Account, error)
	AppendAccount(ctx context.Context, account Account) error
	VerifyAccount(ctx context.Context, email string) (Account, error)
}

// MarkerStore persists the opaque session and pending-verification markers.
// Both markers are bare email strings held in dedicated storage slots.
type MarkerStore interface {
	SessionMarker(ctx context.Context) (string, error)
	SetSessionMarker(ctx context.Context, email string) error
	ClearSessionMarker(ctx context.Context) error
	PendingVerification(ctx context.Context) (string, error)
	SetPendingVerification(ctx context.Context, email string) error
	ClearPendingVerification(ctx context.Context) error
}

// SessionService owns the Anonymous/Authenticated state machine: login,
// logout, silent session restore, registration, and email verification.
type SessionService struct {
	accounts    AccountStore
	markers     MarkerStore
	nav         *Navigator
	idGenerator func() string
	logger      *slog.Logger

	current *Account
}

// NewSessionService wires dependencies for the session service.
func NewSessionService(accounts AccountStore, markers MarkerStore, nav *Navigator, idGenerator func() string, logger *slog.Logger) *SessionService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &SessionService{
		accounts:    accounts,
		markers:     markers,
		nav:         nav,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

func (s *SessionService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SessionService", operation, attrs...)
}

// Current returns the authenticated account, if any.
func (s *SessionService) Current() (Account, bool) {
	if s == nil || s.current == nil {
		return Account{}, false
	}
	return *s.current, true
}

// Login transitions Anonymous to Authenticated when an account exists with
// the exact email, the exact password, and verified set. On success the
// session marker is persisted and navigation moves to the profile section.
func (s *SessionService) Login(ctx context.Context, params LoginParams) (account Account, err error) {
	if s == nil {
		err = fmt.Errorf("SessionService is nil")
		return
	}
	if s.accounts == nil {
		err = fmt.Errorf("account store not configured")
		return
	}

	logger := s.loggerWith(ctx, "Login", "email", params.Email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "login failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("account_id", account.ID).InfoContext(ctx, "login succeeded")
	}()

	if params.Email == "" || params.Password == "" {
		err = ErrInvalidCredentials
		return
	}

	account, err = s.accounts.FindAccountByCredentials(ctx, params.Email, params.Password)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = ErrInvalidCredentials
		}
		return
	}
	if !account.Verified {
		account = Account{}
		err = ErrInvalidCredentials
		return
	}

	if s.markers != nil {
		if err = s.markers.SetSessionMarker(ctx, account.Email); err != nil {
			account = Account{}
			return
		}
	}

	s.current = &account

	if s.nav != nil {
		if err = s.nav.Show(SectionProfile, false); err != nil {
			return
		}
	}
	return
}

// Restore silently re-authenticates from a persisted session marker. The
// marker is trusted: no password check is performed, only that it resolves to
// a verified account. A dangling marker is cleared and the session stays
// Anonymous.
func (s *SessionService) Restore(ctx context.Context) (account Account, err error) {
	if s == nil {
		err = fmt.Errorf("SessionService is nil")
		return
	}
	if s.markers == nil || s.accounts == nil {
		err = ErrNotFound
		return
	}

	logger := s.loggerWith(ctx, "Restore")

	var marker string
	marker, err = s.markers.SessionMarker(ctx)
	if err != nil {
		return
	}

	account, err = s.accounts.FindAccountByEmail(ctx, marker)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return
	}
	if errors.Is(err, ErrNotFound) || !account.Verified {
		logger.WarnContext(ctx, "session marker does not resolve to a verified account", "email", marker)
		if clearErr := s.markers.ClearSessionMarker(ctx); clearErr != nil {
			err = clearErr
			return
		}
		account = Account{}
		err = ErrNotFound
		return
	}

	s.current = &account
	logger.With("account_id", account.ID).InfoContext(ctx, "session restored")
	return
}

// Logout transitions Authenticated to Anonymous, clears the session marker,
// and navigates to the home section.
func (s *SessionService) Logout(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("SessionService is nil")
	}

	logger := s.loggerWith(ctx, "Logout")

	s.current = nil
	if s.markers != nil {
		if err := s.markers.ClearSessionMarker(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to clear session marker", "error", err)
			return err
		}
	}

	logger.InfoContext(ctx, "logged out")
	if s.nav != nil {
		return s.nav.Show(SectionHome, false)
	}
	return nil
}

// Register creates an unverified User-role account and stores the
// pending-verification marker. The caller stays logged out; ErrEmailTaken is
// returned without mutation when the email already has an account.
func (s *SessionService) Register(ctx context.Context, params RegisterParams) (account Account, err error) {
	if s == nil {
		err = fmt.Errorf("SessionService is nil")
		return
	}
	if s.accounts == nil {
		err = fmt.Errorf("account store not configured")
		return
	}

	logger := s.loggerWith(ctx, "Register", "email", params.Email)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "registration failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("account_id", account.ID).InfoContext(ctx, "account registered")
	}()

	vErr := validateRegisterParams(params)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	if _, lookupErr := s.accounts.FindAccountByEmail(ctx, params.Email); lookupErr == nil {
		err = ErrEmailTaken
		return
	} else if !errors.Is(lookupErr, ErrNotFound) {
		err = lookupErr
		return
	}

	account = Account{
		ID:        s.idGenerator(),
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  params.Password,
		Role:      RoleUser,
		Verified:  false,
	}

	if err = s.accounts.AppendAccount(ctx, account); err != nil {
		account = Account{}
		return
	}

	if s.markers != nil {
		if err = s.markers.SetPendingVerification(ctx, account.Email); err != nil {
			return
		}
	}
	return
}

// Verify marks the account referenced by the pending-verification marker as
// verified and clears the marker. Without a marker or a matching account it
// returns ErrNoPendingVerification; the marker is only cleared on success.
func (s *SessionService) Verify(ctx context.Context) (account Account, err error) {
	if s == nil {
		err = fmt.Errorf("SessionService is nil")
		return
	}
	if s.accounts == nil || s.markers == nil {
		err = ErrNoPendingVerification
		return
	}

	logger := s.loggerWith(ctx, "Verify")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "verification skipped", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("account_id", account.ID).InfoContext(ctx, "account verified")
	}()

	var marker string
	marker, err = s.markers.PendingVerification(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = ErrNoPendingVerification
		}
		return
	}

	account, err = s.accounts.VerifyAccount(ctx, marker)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			err = ErrNoPendingVerification
		}
		return
	}

	if err = s.markers.ClearPendingVerification(ctx); err != nil {
		return
	}
	return
}

func validateRegisterParams(params RegisterParams) *ValidationError {
	vErr := &ValidationError{}

	if params.FirstName == "" {
		vErr.add("first_name", "first name is required")
	}
	if params.LastName == "" {
		vErr.add("last_name", "last name is required")
	}
	if params.Email == "" {
		vErr.add("email", "email is required")
	} else if _, err := mail.ParseAddress(params.Email); err != nil {
		vErr.add("email", "email is invalid")
	}
	if params.Password == "" {
		vErr.add("password", "password is required")
	}

	return vErr
}
