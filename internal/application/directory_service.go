package application

import (
	"context"
	"fmt"
)

// DirectoryStore exposes the read-only listings backing the accounts and
// departments sections.
type DirectoryStore interface {
	ListAccounts(ctx context.Context) ([]Account, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}

// DirectoryService serves the read-mostly catalog views.
type DirectoryService struct {
	directory DirectoryStore
}

// NewDirectoryService wires dependencies for the directory service.
func NewDirectoryService(directory DirectoryStore) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// Accounts returns all registered accounts in insertion order.
func (s *DirectoryService) Accounts(ctx context.Context) ([]Account, error) {
	if s == nil {
		return nil, fmt.Errorf("DirectoryService is nil")
	}
	if s.directory == nil {
		return nil, nil
	}
	return s.directory.ListAccounts(ctx)
}

// Departments returns the department catalog in insertion order.
func (s *DirectoryService) Departments(ctx context.Context) ([]Department, error) {
	if s == nil {
		return nil, fmt.Errorf("DirectoryService is nil")
	}
	if s.directory == nil {
		return nil, nil
	}
	return s.directory.ListDepartments(ctx)
}
