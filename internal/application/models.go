package application

// Role identifies the privilege level attached to an account.
type Role string

const (
	// RoleAdmin marks administrator accounts created by seeding.
	RoleAdmin Role = "Admin"
	// RoleUser marks accounts created through self-registration.
	RoleUser Role = "User"
)

// RequestStatus tracks the lifecycle state of a submitted request.
type RequestStatus string

// RequestStatusPending is the status stamped on every newly submitted request.
const RequestStatusPending RequestStatus = "Pending"

// Account represents a registered portal account.
type Account struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      Role
	Verified  bool
}

// DisplayName renders the account holder's full name.
func (a Account) DisplayName() string {
	return a.FirstName + " " + a.LastName
}

// Employee represents a managed employee record. The identifier is caller
// supplied and carries no uniqueness guarantee.
type Employee struct {
	ID         string
	Email      string
	Position   string
	Department string
	HireDate   string
}

// Department represents a read-only department catalog entry.
type Department struct {
	ID          string
	Name        string
	Description string
}

// RequestItem is a single line item of a request.
type RequestItem struct {
	Name     string
	Quantity int
}

// Request represents a submitted item request owned by an account.
type Request struct {
	ID         string
	Type       string
	Items      []RequestItem
	Status     RequestStatus
	Date       string
	OwnerEmail string
}

// RegisterParams captures the data required to register a new account.
type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginParams captures the credentials presented at login.
type LoginParams struct {
	Email    string
	Password string
}

// SubmitRequestParams captures the data required to submit the request being
// assembled in the transient item list.
type SubmitRequestParams struct {
	OwnerEmail string
	Type       string
}
