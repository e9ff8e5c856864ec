package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/workforce-portal/internal/application"
)

// SlotNames identifies the storage slots used by the document store. The
// defaults keep the storage keys of earlier portal versions.
type SlotNames struct {
	Data                string
	SessionMarker       string
	PendingVerification string
}

// DefaultSlotNames returns the storage keys used by earlier portal versions.
func DefaultSlotNames() SlotNames {
	return SlotNames{
		Data:                "fullstack_app_data",
		SessionMarker:       "auth_token",
		PendingVerification: "unverified_email",
	}
}

func (n SlotNames) withDefaults() SlotNames {
	defaults := DefaultSlotNames()
	if n.Data == "" {
		n.Data = defaults.Data
	}
	if n.SessionMarker == "" {
		n.SessionMarker = defaults.SessionMarker
	}
	if n.PendingVerification == "" {
		n.PendingVerification = defaults.PendingVerification
	}
	return n
}

// DocumentStore owns the in-memory entity graph and mirrors it to a durable
// slot as one JSON snapshot. Every mutation re-serializes the whole document;
// there is no dirty tracking and no incremental write.
//
// The store is single-writer by design: the portal processes one command at a
// time, so no locking is layered on top of the slot store.
type DocumentStore struct {
	slots  SlotStore
	names  SlotNames
	logger *slog.Logger

	doc Document
}

// NewDocumentStore constructs a document store over the given slot store.
func NewDocumentStore(slots SlotStore, names SlotNames, logger *slog.Logger) *DocumentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentStore{
		slots:  slots,
		names:  names.withDefaults(),
		logger: logger,
	}
}

// seedDocument returns the fixed data set installed when storage is empty or
// corrupt: one verified Admin account, two departments, nothing else.
func seedDocument() Document {
	return Document{
		Accounts: []Account{
			{
				ID:        "acc_1",
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "admin123",
				Role:      string(application.RoleAdmin),
				Verified:  true,
			},
		},
		Employees: []Employee{},
		Departments: []Department{
			{ID: "dept_1", Name: "Engineering", Description: "Software team"},
			{ID: "dept_2", Name: "HR", Description: "Human Resources"},
		},
		Requests: []Request{},
	}
}

// Load reads the durable snapshot into memory. A missing slot installs the
// seed data set; an unparsable snapshot is logged and replaced by the seed.
// Either way the seed is written back immediately so storage always holds a
// complete snapshot.
func (s *DocumentStore) Load(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("DocumentStore is nil")
	}
	if s.slots == nil {
		return fmt.Errorf("slot store not configured")
	}

	raw, err := s.slots.Get(ctx, s.names.Data)
	if errors.Is(err, ErrSlotNotFound) {
		return s.seed(ctx)
	}
	if err != nil {
		return fmt.Errorf("read document slot: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Error("stored document is unparsable, reseeding", "slot", s.names.Data, "error", err)
		return s.seed(ctx)
	}

	s.doc = doc
	return nil
}

// Save serializes the entire in-memory document and writes it to the data
// slot. It must run after every mutation; the mutating methods below do so.
func (s *DocumentStore) Save(ctx context.Context) error {
	if s == nil {
		return fmt.Errorf("DocumentStore is nil")
	}
	if s.slots == nil {
		return fmt.Errorf("slot store not configured")
	}

	raw, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.slots.Set(ctx, s.names.Data, string(raw)); err != nil {
		return fmt.Errorf("write document slot: %w", err)
	}
	return nil
}

func (s *DocumentStore) seed(ctx context.Context) error {
	s.doc = seedDocument()
	return s.Save(ctx)
}

// --- application.AccountStore ---

// FindAccountByEmail returns the first account with the exact email.
func (s *DocumentStore) FindAccountByEmail(_ context.Context, email string) (application.Account, error) {
	for _, account := range s.doc.Accounts {
		if account.Email == email {
			return toApplicationAccount(account), nil
		}
	}
	return application.Account{}, application.ErrNotFound
}

// FindAccountByCredentials returns the first account with the exact email and
// password. Comparison is case-sensitive on both fields.
func (s *DocumentStore) FindAccountByCredentials(_ context.Context, email, password string) (application.Account, error) {
	for _, account := range s.doc.Accounts {
		if account.Email == email && account.Password == password {
			return toApplicationAccount(account), nil
		}
	}
	return application.Account{}, application.ErrNotFound
}

// AppendAccount adds a new account and persists the snapshot. A duplicate
// email yields application.ErrEmailTaken without mutation.
func (s *DocumentStore) AppendAccount(ctx context.Context, account application.Account) error {
	for _, existing := range s.doc.Accounts {
		if existing.Email == account.Email {
			return application.ErrEmailTaken
		}
	}

	s.doc.Accounts = append(s.doc.Accounts, fromApplicationAccount(account))
	return s.Save(ctx)
}

// VerifyAccount marks the first account with the exact email as verified and
// persists the snapshot.
func (s *DocumentStore) VerifyAccount(ctx context.Context, email string) (application.Account, error) {
	for i := range s.doc.Accounts {
		if s.doc.Accounts[i].Email == email {
			s.doc.Accounts[i].Verified = true
			if err := s.Save(ctx); err != nil {
				return application.Account{}, err
			}
			return toApplicationAccount(s.doc.Accounts[i]), nil
		}
	}
	return application.Account{}, application.ErrNotFound
}

// --- application.MarkerStore ---

// SessionMarker returns the persisted session marker email.
func (s *DocumentStore) SessionMarker(ctx context.Context) (string, error) {
	return s.marker(ctx, s.names.SessionMarker)
}

// SetSessionMarker persists the session marker email.
func (s *DocumentStore) SetSessionMarker(ctx context.Context, email string) error {
	return s.slots.Set(ctx, s.names.SessionMarker, email)
}

// ClearSessionMarker removes the session marker.
func (s *DocumentStore) ClearSessionMarker(ctx context.Context) error {
	return s.slots.Delete(ctx, s.names.SessionMarker)
}

// PendingVerification returns the pending-verification marker email.
func (s *DocumentStore) PendingVerification(ctx context.Context) (string, error) {
	return s.marker(ctx, s.names.PendingVerification)
}

// SetPendingVerification persists the pending-verification marker email.
func (s *DocumentStore) SetPendingVerification(ctx context.Context, email string) error {
	return s.slots.Set(ctx, s.names.PendingVerification, email)
}

// ClearPendingVerification removes the pending-verification marker.
func (s *DocumentStore) ClearPendingVerification(ctx context.Context) error {
	return s.slots.Delete(ctx, s.names.PendingVerification)
}

func (s *DocumentStore) marker(ctx context.Context, name string) (string, error) {
	value, err := s.slots.Get(ctx, name)
	if errors.Is(err, ErrSlotNotFound) {
		return "", application.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// --- application.EmployeeStore ---

// AppendEmployee adds an employee record and persists the snapshot. The
// identifier is stored as given, without a uniqueness check.
func (s *DocumentStore) AppendEmployee(ctx context.Context, employee application.Employee) error {
	s.doc.Employees = append(s.doc.Employees, fromApplicationEmployee(employee))
	return s.Save(ctx)
}

// UpdateEmployee replaces the first employee whose identifier matches and
// persists the snapshot.
func (s *DocumentStore) UpdateEmployee(ctx context.Context, employee application.Employee) error {
	for i := range s.doc.Employees {
		if s.doc.Employees[i].ID == employee.ID {
			s.doc.Employees[i] = fromApplicationEmployee(employee)
			return s.Save(ctx)
		}
	}
	return application.ErrNotFound
}

// DeleteEmployee removes the first employee whose identifier matches and
// persists the snapshot.
func (s *DocumentStore) DeleteEmployee(ctx context.Context, id string) error {
	for i := range s.doc.Employees {
		if s.doc.Employees[i].ID == id {
			s.doc.Employees = append(s.doc.Employees[:i], s.doc.Employees[i+1:]...)
			return s.Save(ctx)
		}
	}
	return application.ErrNotFound
}

// ListEmployees returns all employee records in insertion order.
func (s *DocumentStore) ListEmployees(_ context.Context) ([]application.Employee, error) {
	if len(s.doc.Employees) == 0 {
		return nil, nil
	}
	out := make([]application.Employee, 0, len(s.doc.Employees))
	for _, employee := range s.doc.Employees {
		out = append(out, toApplicationEmployee(employee))
	}
	return out, nil
}

// --- application.RequestStore ---

// AppendRequest adds a submitted request and persists the snapshot.
func (s *DocumentStore) AppendRequest(ctx context.Context, request application.Request) error {
	s.doc.Requests = append(s.doc.Requests, fromApplicationRequest(request))
	return s.Save(ctx)
}

// DeleteRequest removes the request with the given identifier from the global
// list, provided it is owned by ownerEmail, and persists the snapshot.
func (s *DocumentStore) DeleteRequest(ctx context.Context, id, ownerEmail string) error {
	for i := range s.doc.Requests {
		if s.doc.Requests[i].ID == id && s.doc.Requests[i].OwnerEmail == ownerEmail {
			s.doc.Requests = append(s.doc.Requests[:i], s.doc.Requests[i+1:]...)
			return s.Save(ctx)
		}
	}
	return application.ErrNotFound
}

// ListRequestsByOwner returns the requests owned by the given email, in
// submission order.
func (s *DocumentStore) ListRequestsByOwner(_ context.Context, ownerEmail string) ([]application.Request, error) {
	var out []application.Request
	for _, request := range s.doc.Requests {
		if request.OwnerEmail == ownerEmail {
			out = append(out, toApplicationRequest(request))
		}
	}
	return out, nil
}

// CountRequests returns the total number of requests across all owners. The
// submission sequence number derives from it.
func (s *DocumentStore) CountRequests(_ context.Context) (int, error) {
	return len(s.doc.Requests), nil
}

// --- application.DirectoryStore ---

// ListAccounts returns all accounts in insertion order.
func (s *DocumentStore) ListAccounts(_ context.Context) ([]application.Account, error) {
	if len(s.doc.Accounts) == 0 {
		return nil, nil
	}
	out := make([]application.Account, 0, len(s.doc.Accounts))
	for _, account := range s.doc.Accounts {
		out = append(out, toApplicationAccount(account))
	}
	return out, nil
}

// ListDepartments returns the department catalog in insertion order.
func (s *DocumentStore) ListDepartments(_ context.Context) ([]application.Department, error) {
	if len(s.doc.Departments) == 0 {
		return nil, nil
	}
	out := make([]application.Department, 0, len(s.doc.Departments))
	for _, department := range s.doc.Departments {
		out = append(out, application.Department(department))
	}
	return out, nil
}

// --- conversions ---

func toApplicationAccount(model Account) application.Account {
	return application.Account{
		ID:        model.ID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Email:     model.Email,
		Password:  model.Password,
		Role:      application.Role(model.Role),
		Verified:  model.Verified,
	}
}

func fromApplicationAccount(account application.Account) Account {
	return Account{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Password:  account.Password,
		Role:      string(account.Role),
		Verified:  account.Verified,
	}
}

func toApplicationEmployee(model Employee) application.Employee {
	return application.Employee(model)
}

func fromApplicationEmployee(employee application.Employee) Employee {
	return Employee(employee)
}

func toApplicationRequest(model Request) application.Request {
	items := make([]application.RequestItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, application.RequestItem(item))
	}
	return application.Request{
		ID:         model.ID,
		Type:       model.Type,
		Items:      items,
		Status:     application.RequestStatus(model.Status),
		Date:       model.Date,
		OwnerEmail: model.OwnerEmail,
	}
}

func fromApplicationRequest(request application.Request) Request {
	items := make([]RequestItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, RequestItem(item))
	}
	return Request{
		ID:         request.ID,
		Type:       request.Type,
		Items:      items,
		Status:     string(request.Status),
		Date:       request.Date,
		OwnerEmail: request.OwnerEmail,
	}
}

// Interface conformance checks.
var (
	_ application.AccountStore   = (*DocumentStore)(nil)
	_ application.MarkerStore    = (*DocumentStore)(nil)
	_ application.EmployeeStore  = (*DocumentStore)(nil)
	_ application.RequestStore   = (*DocumentStore)(nil)
	_ application.DirectoryStore = (*DocumentStore)(nil)
)
