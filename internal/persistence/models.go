package persistence

// Document is the complete entity graph serialized as one JSON snapshot. The
// field names match the storage blob produced by earlier versions of the
// portal, so an exported blob round-trips unchanged.
type Document struct {
	Accounts    []Account    `json:"accounts"`
	Employees   []Employee   `json:"employees"`
	Departments []Department `json:"departments"`
	Requests    []Request    `json:"requests"`
}

// Account is the stored form of a registered account. The password is held in
// plain text; credential checks are exact string comparisons.
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// Employee is the stored form of an employee record.
type Employee struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
	HireDate   string `json:"hireDate"`
}

// Department is the stored form of a department catalog entry.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RequestItem is the stored form of a request line item.
type RequestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Request is the stored form of a submitted request. OwnerEmail references
// Account.Email; the link is assumed, not enforced.
type Request struct {
	ID         string        `json:"id"`
	Type       string        `json:"type"`
	Items      []RequestItem `json:"items"`
	Status     string        `json:"status"`
	Date       string        `json:"date"`
	OwnerEmail string        `json:"employeeEmail"`
}
