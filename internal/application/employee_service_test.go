package application

import (
	"context"
	"errors"
	"testing"
)

func TestEmployeeService_Add(t *testing.T) {
	t.Parallel()

	t.Run("persists a validated record", func(t *testing.T) {
		t.Parallel()

		store := &employeeStoreStub{}
		svc := NewEmployeeService(store, nil)

		employee, err := svc.Add(context.Background(), Employee{
			ID:         "emp_1",
			Email:      "lee@example.com",
			Position:   "Engineer",
			Department: "Engineering",
			HireDate:   "2024-01-15",
		})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		if employee.ID != "emp_1" {
			t.Fatalf("expected the supplied identifier, got %q", employee.ID)
		}
		if len(store.employees) != 1 {
			t.Fatalf("expected one persisted employee, got %d", len(store.employees))
		}
	})

	t.Run("requires the identifier and the email", func(t *testing.T) {
		t.Parallel()

		svc := NewEmployeeService(&employeeStoreStub{}, nil)

		_, err := svc.Add(context.Background(), Employee{Position: "Engineer"})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if _, ok := vErr.FieldErrors["id"]; !ok {
			t.Fatalf("expected an id error, got %v", vErr.FieldErrors)
		}
		if _, ok := vErr.FieldErrors["email"]; !ok {
			t.Fatalf("expected an email error, got %v", vErr.FieldErrors)
		}
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces the matching record in place", func(t *testing.T) {
		t.Parallel()

		store := &employeeStoreStub{employees: []Employee{
			{ID: "emp_1", Email: "lee@example.com", Position: "Engineer"},
			{ID: "emp_2", Email: "kim@example.com", Position: "Designer"},
		}}
		svc := NewEmployeeService(store, nil)

		_, err := svc.Update(context.Background(), Employee{
			ID:       "emp_1",
			Email:    "lee@example.com",
			Position: "Staff Engineer",
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if store.employees[0].Position != "Staff Engineer" {
			t.Fatalf("expected the first record updated in place, got %q", store.employees[0].Position)
		}
		if store.employees[1].ID != "emp_2" {
			t.Fatalf("expected the second record untouched, got %v", store.employees[1])
		}
	})

	t.Run("propagates ErrNotFound for an unknown identifier", func(t *testing.T) {
		t.Parallel()

		svc := NewEmployeeService(&employeeStoreStub{}, nil)

		_, err := svc.Update(context.Background(), Employee{ID: "emp_missing", Email: "x@example.com"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Parallel()

	store := &employeeStoreStub{employees: []Employee{
		{ID: "emp_1", Email: "lee@example.com"},
		{ID: "emp_2", Email: "kim@example.com"},
	}}
	svc := NewEmployeeService(store, nil)

	if err := svc.Delete(context.Background(), "emp_1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(store.employees) != 1 || store.employees[0].ID != "emp_2" {
		t.Fatalf("expected only emp_2 to remain, got %v", store.employees)
	}

	if err := svc.Delete(context.Background(), "emp_1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a repeated delete, got %v", err)
	}
}

func TestEmployeeService_List(t *testing.T) {
	t.Parallel()

	store := &employeeStoreStub{employees: []Employee{
		{ID: "emp_1", Email: "lee@example.com"},
		{ID: "emp_2", Email: "kim@example.com"},
	}}
	svc := NewEmployeeService(store, nil)

	employees, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(employees) != 2 || employees[0].ID != "emp_1" {
		t.Fatalf("expected both records in insertion order, got %v", employees)
	}
}
