package application

import (
	"context"
	"fmt"
	"log/slog"
)

// EmployeeStore exposes the persistence operations needed by the employee
// service. Identifier matches use first-match semantics because employee IDs
// are caller supplied and unchecked for uniqueness.
type EmployeeStore interface {
	AppendEmployee(ctx context.Context, employee Employee) error
	UpdateEmployee(ctx context.Context, employee Employee) error
	DeleteEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context) ([]Employee, error)
}

// EmployeeService orchestrates validation and persistence for employee
// records.
type EmployeeService struct {
	employees EmployeeStore
	logger    *slog.Logger
}

// NewEmployeeService wires dependencies for the employee service.
func NewEmployeeService(employees EmployeeStore, logger *slog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, logger: defaultLogger(logger)}
}

// Add appends a new employee record. The identifier is taken as given.
func (s *EmployeeService) Add(ctx context.Context, employee Employee) (Employee, error) {
	if s == nil {
		return Employee{}, fmt.Errorf("EmployeeService is nil")
	}
	if s.employees == nil {
		return Employee{}, fmt.Errorf("employee store not configured")
	}

	vErr := validateEmployee(employee)
	if vErr.HasErrors() {
		return Employee{}, vErr
	}

	if err := s.employees.AppendEmployee(ctx, employee); err != nil {
		return Employee{}, err
	}

	serviceLogger(ctx, s.logger, "EmployeeService", "Add").
		InfoContext(ctx, "employee added", "employee_id", employee.ID)
	return employee, nil
}

// Update replaces the first employee whose identifier matches, in place. A
// cancelled edit therefore keeps the original record.
func (s *EmployeeService) Update(ctx context.Context, employee Employee) (Employee, error) {
	if s == nil {
		return Employee{}, fmt.Errorf("EmployeeService is nil")
	}
	if s.employees == nil {
		return Employee{}, fmt.Errorf("employee store not configured")
	}

	vErr := validateEmployee(employee)
	if vErr.HasErrors() {
		return Employee{}, vErr
	}

	if err := s.employees.UpdateEmployee(ctx, employee); err != nil {
		return Employee{}, err
	}

	serviceLogger(ctx, s.logger, "EmployeeService", "Update").
		InfoContext(ctx, "employee updated", "employee_id", employee.ID)
	return employee, nil
}

// Delete removes the first employee whose identifier matches. Interactive
// confirmation is the caller's responsibility.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if s == nil {
		return fmt.Errorf("EmployeeService is nil")
	}
	if s.employees == nil {
		return fmt.Errorf("employee store not configured")
	}

	if err := s.employees.DeleteEmployee(ctx, id); err != nil {
		return err
	}

	serviceLogger(ctx, s.logger, "EmployeeService", "Delete").
		InfoContext(ctx, "employee deleted", "employee_id", id)
	return nil
}

// List returns all employee records in insertion order.
func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	if s == nil {
		return nil, fmt.Errorf("EmployeeService is nil")
	}
	if s.employees == nil {
		return nil, nil
	}
	return s.employees.ListEmployees(ctx)
}

func validateEmployee(employee Employee) *ValidationError {
	vErr := &ValidationError{}

	if employee.ID == "" {
		vErr.add("id", "employee id is required")
	}
	if employee.Email == "" {
		vErr.add("email", "email is required")
	}

	return vErr
}
