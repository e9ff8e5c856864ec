package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/workforce-portal/internal/application"
	"github.com/example/workforce-portal/internal/testfixtures"
)

type sessionStub struct {
	account application.Account
	ok      bool
}

func (s *sessionStub) Current() (application.Account, bool) { return s.account, s.ok }

func newTestRenderer(t *testing.T) (*ConsoleRenderer, *bytes.Buffer, *sessionStub, *application.EmployeeService, *application.RequestService) {
	t.Helper()

	store, _ := testfixtures.NewDocumentStore(t)
	employees := application.NewEmployeeService(store, nil)
	directory := application.NewDirectoryService(store)
	requests := application.NewRequestService(store, nil, nil)

	out := &bytes.Buffer{}
	session := &sessionStub{}
	renderer := NewConsoleRenderer(out, employees, directory, requests)
	renderer.BindSession(session)
	return renderer, out, session, employees, requests
}

func TestConsoleRenderer_ShowSection(t *testing.T) {
	t.Parallel()

	t.Run("prints the section banner", func(t *testing.T) {
		t.Parallel()

		renderer, out, _, _, _ := newTestRenderer(t)

		renderer.ShowSection(application.SectionHome)

		if !strings.Contains(out.String(), "=== HOME ===") {
			t.Fatalf("expected the home banner, got %q", out.String())
		}
	})

	t.Run("profile shows the authenticated account", func(t *testing.T) {
		t.Parallel()

		renderer, out, session, _, _ := newTestRenderer(t)
		session.account = testfixtures.NewAccountFixture(testfixtures.WithEmail("dana@example.com"))
		session.ok = true

		renderer.ShowSection(application.SectionProfile)

		if !strings.Contains(out.String(), "dana@example.com") {
			t.Fatalf("expected the profile email, got %q", out.String())
		}
	})

	t.Run("profile without a session says so", func(t *testing.T) {
		t.Parallel()

		renderer, out, _, _, _ := newTestRenderer(t)

		renderer.ShowSection(application.SectionProfile)

		if !strings.Contains(out.String(), "Not logged in.") {
			t.Fatalf("expected the anonymous profile message, got %q", out.String())
		}
	})

	t.Run("departments lists the seeded catalog", func(t *testing.T) {
		t.Parallel()

		renderer, out, _, _, _ := newTestRenderer(t)

		renderer.ShowSection(application.SectionDepartments)

		for _, expected := range []string{"Engineering", "Software team", "HR", "Human Resources"} {
			if !strings.Contains(out.String(), expected) {
				t.Fatalf("expected %q in the departments table, got %q", expected, out.String())
			}
		}
	})
}

func TestConsoleRenderer_RefreshEmployees(t *testing.T) {
	t.Parallel()

	t.Run("renders added employees", func(t *testing.T) {
		t.Parallel()

		renderer, out, _, employees, _ := newTestRenderer(t)
		fixture := testfixtures.NewEmployeeFixture()
		if _, err := employees.Add(context.Background(), fixture); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		renderer.RefreshEmployees()

		if !strings.Contains(out.String(), fixture.Email) {
			t.Fatalf("expected the employee email in the table, got %q", out.String())
		}
	})

	t.Run("points at add-employee when the table is empty", func(t *testing.T) {
		t.Parallel()

		renderer, out, _, _, _ := newTestRenderer(t)

		renderer.RefreshEmployees()

		if !strings.Contains(out.String(), "No employees found") {
			t.Fatalf("expected the empty-table hint, got %q", out.String())
		}
	})
}

func TestConsoleRenderer_RefreshAccounts(t *testing.T) {
	t.Parallel()

	store, _ := testfixtures.NewDocumentStore(t)
	pending := testfixtures.NewAccountFixture(
		testfixtures.WithEmail("pending@example.com"),
		testfixtures.WithPassword("pending123"),
		testfixtures.Unverified(),
	)
	if err := store.AppendAccount(context.Background(), pending); err != nil {
		t.Fatalf("AppendAccount failed: %v", err)
	}

	out := &bytes.Buffer{}
	renderer := NewConsoleRenderer(out, application.NewEmployeeService(store, nil), application.NewDirectoryService(store), application.NewRequestService(store, nil, nil))

	renderer.RefreshAccounts()

	if !strings.Contains(out.String(), "Admin User") {
		t.Fatalf("expected the seeded admin in the accounts table, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Yes") {
		t.Fatalf("expected the verified flag rendered as Yes, got %q", out.String())
	}
	if !strings.Contains(out.String(), "pending@example.com") || !strings.Contains(out.String(), "No") {
		t.Fatalf("expected the unverified account rendered with No, got %q", out.String())
	}
}

func TestConsoleRenderer_RefreshRequests(t *testing.T) {
	t.Parallel()

	t.Run("asks for a login when anonymous", func(t *testing.T) {
		t.Parallel()

		renderer, out, _, _, _ := newTestRenderer(t)

		renderer.RefreshRequests()

		if !strings.Contains(out.String(), "Log in to see your requests.") {
			t.Fatalf("expected the anonymous hint, got %q", out.String())
		}
	})

	t.Run("lists only the session owner's requests", func(t *testing.T) {
		t.Parallel()

		store, _ := testfixtures.NewDocumentStore(t)
		employees := application.NewEmployeeService(store, nil)
		directory := application.NewDirectoryService(store)
		requests := application.NewRequestService(store, nil, nil)

		ctx := context.Background()
		mine := testfixtures.NewRequestFixture("dana@example.com")
		other := testfixtures.NewRequestFixture("other@example.com")
		for _, request := range []application.Request{mine, other} {
			if err := store.AppendRequest(ctx, request); err != nil {
				t.Fatalf("AppendRequest failed: %v", err)
			}
		}

		out := &bytes.Buffer{}
		renderer := NewConsoleRenderer(out, employees, directory, requests)
		renderer.BindSession(&sessionStub{
			account: testfixtures.NewAccountFixture(testfixtures.WithEmail("dana@example.com")),
			ok:      true,
		})

		renderer.RefreshRequests()

		if !strings.Contains(out.String(), mine.ID) {
			t.Fatalf("expected the owner's request %s, got %q", mine.ID, out.String())
		}
		if strings.Contains(out.String(), other.ID) {
			t.Fatalf("expected the foreign request %s to be filtered out, got %q", other.ID, out.String())
		}
	})
}
