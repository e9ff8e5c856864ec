// Package testfixtures provides deterministic builders shared by the
// application and persistence tests.
package testfixtures

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/example/workforce-portal/internal/application"
	"github.com/example/workforce-portal/internal/persistence"
)

var (
	accountCounter  uint64
	employeeCounter uint64
	requestCounter  uint64
)

// AccountOption configures a generated account fixture.
type AccountOption func(*application.Account)

// NewAccountFixture returns a deterministic verified account with optional
// overrides.
func NewAccountFixture(opts ...AccountOption) application.Account {
	idx := atomic.AddUint64(&accountCounter, 1)
	account := application.Account{
		ID:        fmt.Sprintf("acc_fixture_%03d", idx),
		FirstName: "Test",
		LastName:  fmt.Sprintf("User%03d", idx),
		Email:     fmt.Sprintf("user%03d@example.com", idx),
		Password:  fmt.Sprintf("secret%03d", idx),
		Role:      application.RoleUser,
		Verified:  true,
	}
	for _, opt := range opts {
		opt(&account)
	}
	return account
}

// WithEmail overrides the generated email address.
func WithEmail(email string) AccountOption {
	return func(a *application.Account) { a.Email = email }
}

// WithPassword overrides the generated password.
func WithPassword(password string) AccountOption {
	return func(a *application.Account) { a.Password = password }
}

// Unverified marks the fixture account as not yet verified.
func Unverified() AccountOption {
	return func(a *application.Account) { a.Verified = false }
}

// NewEmployeeFixture returns a deterministic employee record.
func NewEmployeeFixture() application.Employee {
	idx := atomic.AddUint64(&employeeCounter, 1)
	return application.Employee{
		ID:         fmt.Sprintf("emp_%03d", idx),
		Email:      fmt.Sprintf("emp%03d@example.com", idx),
		Position:   "Engineer",
		Department: "Engineering",
		HireDate:   "2024-01-15",
	}
}

// NewRequestFixture returns a deterministic request owned by the given email.
func NewRequestFixture(ownerEmail string) application.Request {
	idx := atomic.AddUint64(&requestCounter, 1)
	return application.Request{
		ID:         fmt.Sprintf("REQ-%03d", idx),
		Type:       "Equipment",
		Items:      []application.RequestItem{{Name: "Laptop", Quantity: 1}},
		Status:     application.RequestStatusPending,
		Date:       "3/15/2024",
		OwnerEmail: ownerEmail,
	}
}

// NewDocumentStore returns a seeded document store over in-memory slots,
// ready for application level tests.
func NewDocumentStore(tb testing.TB) (*persistence.DocumentStore, *persistence.MemorySlots) {
	tb.Helper()

	slots := persistence.NewMemorySlots()
	store := persistence.NewDocumentStore(slots, persistence.SlotNames{}, slog.Default())
	if err := store.Load(context.Background()); err != nil {
		tb.Fatalf("failed to load document store: %v", err)
	}
	return store, slots
}
