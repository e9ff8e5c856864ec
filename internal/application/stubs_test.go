package application

import (
	"context"
	"errors"
)

// accountStoreStub keeps accounts in a slice with the same linear,
// case-sensitive matching the document store uses.
type accountStoreStub struct {
	accounts []Account

	appendErr error
	findErr   error

	appendCalls []Account
	verifyCalls []string
}

func (s *accountStoreStub) FindAccountByEmail(_ context.Context, email string) (Account, error) {
	if s.findErr != nil {
		return Account{}, s.findErr
	}
	for _, account := range s.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return Account{}, ErrNotFound
}

func (s *accountStoreStub) FindAccountByCredentials(_ context.Context, email, password string) (Account, error) {
	if s.findErr != nil {
		return Account{}, s.findErr
	}
	for _, account := range s.accounts {
		if account.Email == email && account.Password == password {
			return account, nil
		}
	}
	return Account{}, ErrNotFound
}

func (s *accountStoreStub) AppendAccount(_ context.Context, account Account) error {
	s.appendCalls = append(s.appendCalls, account)
	if s.appendErr != nil {
		return s.appendErr
	}
	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return ErrEmailTaken
		}
	}
	s.accounts = append(s.accounts, account)
	return nil
}

func (s *accountStoreStub) VerifyAccount(_ context.Context, email string) (Account, error) {
	s.verifyCalls = append(s.verifyCalls, email)
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			s.accounts[i].Verified = true
			return s.accounts[i], nil
		}
	}
	return Account{}, ErrNotFound
}

// markerStoreStub tracks the two marker slots in plain fields.
type markerStoreStub struct {
	session      string
	hasSession   bool
	pending      string
	hasPending   bool
	sessionErr   error
	setErr       error
	clearErr     error
	clearedCalls int
}

func (s *markerStoreStub) SessionMarker(context.Context) (string, error) {
	if s.sessionErr != nil {
		return "", s.sessionErr
	}
	if !s.hasSession {
		return "", ErrNotFound
	}
	return s.session, nil
}

func (s *markerStoreStub) SetSessionMarker(_ context.Context, email string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.session = email
	s.hasSession = true
	return nil
}

func (s *markerStoreStub) ClearSessionMarker(context.Context) error {
	s.clearedCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.session = ""
	s.hasSession = false
	return nil
}

func (s *markerStoreStub) PendingVerification(context.Context) (string, error) {
	if !s.hasPending {
		return "", ErrNotFound
	}
	return s.pending, nil
}

func (s *markerStoreStub) SetPendingVerification(_ context.Context, email string) error {
	s.pending = email
	s.hasPending = true
	return nil
}

func (s *markerStoreStub) ClearPendingVerification(context.Context) error {
	s.pending = ""
	s.hasPending = false
	return nil
}

// rendererStub records the presentation calls the navigator makes.
type rendererStub struct {
	shown             []Section
	employeeRefreshes int
	accountRefreshes  int
	requestRefreshes  int
}

func (r *rendererStub) ShowSection(section Section) { r.shown = append(r.shown, section) }
func (r *rendererStub) RefreshEmployees()           { r.employeeRefreshes++ }
func (r *rendererStub) RefreshAccounts()            { r.accountRefreshes++ }
func (r *rendererStub) RefreshRequests()            { r.requestRefreshes++ }

// employeeStoreStub keeps employees in a slice with first-match updates.
type employeeStoreStub struct {
	employees []Employee

	appendErr error
	updateErr error
	deleteErr error
}

func (s *employeeStoreStub) AppendEmployee(_ context.Context, employee Employee) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.employees = append(s.employees, employee)
	return nil
}

func (s *employeeStoreStub) UpdateEmployee(_ context.Context, employee Employee) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.employees {
		if s.employees[i].ID == employee.ID {
			s.employees[i] = employee
			return nil
		}
	}
	return ErrNotFound
}

func (s *employeeStoreStub) DeleteEmployee(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *employeeStoreStub) ListEmployees(context.Context) ([]Employee, error) {
	return s.employees, nil
}

// requestStoreStub keeps requests in a slice and counts globally.
type requestStoreStub struct {
	requests []Request

	appendErr error
	countErr  error
	deleteErr error
}

func (s *requestStoreStub) AppendRequest(_ context.Context, request Request) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.requests = append(s.requests, request)
	return nil
}

func (s *requestStoreStub) DeleteRequest(_ context.Context, id, ownerEmail string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.requests {
		if s.requests[i].ID == id && s.requests[i].OwnerEmail == ownerEmail {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *requestStoreStub) ListRequestsByOwner(_ context.Context, ownerEmail string) ([]Request, error) {
	var out []Request
	for _, request := range s.requests {
		if request.OwnerEmail == ownerEmail {
			out = append(out, request)
		}
	}
	return out, nil
}

func (s *requestStoreStub) CountRequests(context.Context) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return len(s.requests), nil
}

var errStub = errors.New("stub failure")
