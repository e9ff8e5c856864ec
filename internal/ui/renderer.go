package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/workforce-portal/internal/application"
)

// SessionReader exposes the authenticated account to the renderer.
type SessionReader interface {
	Current() (application.Account, bool)
}

// ConsoleRenderer is the terminal implementation of application.Renderer. It
// displays one section at a time and renders the employee, account, and
// request tables from current store contents.
type ConsoleRenderer struct {
	out       io.Writer
	session   SessionReader
	employees *application.EmployeeService
	directory *application.DirectoryService
	requests  *application.RequestService
}

// NewConsoleRenderer constructs a renderer writing to out.
func NewConsoleRenderer(out io.Writer, employees *application.EmployeeService, directory *application.DirectoryService, requests *application.RequestService) *ConsoleRenderer {
	return &ConsoleRenderer{
		out:       out,
		employees: employees,
		directory: directory,
		requests:  requests,
	}
}

// BindSession attaches the session reader. It is set after construction
// because the session service itself navigates through the renderer.
func (r *ConsoleRenderer) BindSession(session SessionReader) {
	r.session = session
}

// ShowSection prints the banner of the section that became visible.
func (r *ConsoleRenderer) ShowSection(section application.Section) {
	fmt.Fprintf(r.out, "\n=== %s ===\n", strings.ToUpper(string(section)))

	switch section {
	case application.SectionHome:
		fmt.Fprintln(r.out, "Welcome to the workforce portal. Type 'help' for commands.")
	case application.SectionRegister:
		fmt.Fprintln(r.out, "Create a new account with the 'register' command.")
	case application.SectionLogin:
		fmt.Fprintln(r.out, "Sign in with the 'login' command.")
	case application.SectionVerify:
		fmt.Fprintln(r.out, "A verification is pending. Run 'verify' to confirm the email.")
	case application.SectionVerified:
		fmt.Fprintln(r.out, "Email verified. You can log in now.")
	case application.SectionProfile:
		r.renderProfile()
	case application.SectionDepartments:
		r.renderDepartments()
	}
}

// RefreshEmployees renders the employees table from the document store.
func (r *ConsoleRenderer) RefreshEmployees() {
	employees, err := r.employees.List(context.Background())
	if err != nil {
		fmt.Fprintf(r.out, "could not load employees: %v\n", err)
		return
	}
	if len(employees) == 0 {
		fmt.Fprintln(r.out, "No employees found. Use 'add-employee' to create one.")
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tPOSITION\tDEPARTMENT\tHIRED")
	for _, employee := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			employee.ID,
			employee.Email,
			orDash(employee.Position),
			orDash(employee.Department),
			orDash(employee.HireDate),
		)
	}
	tw.Flush()
}

// RefreshAccounts renders the accounts table from the document store.
func (r *ConsoleRenderer) RefreshAccounts() {
	accounts, err := r.directory.Accounts(context.Background())
	if err != nil {
		fmt.Fprintf(r.out, "could not load accounts: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tROLE\tVERIFIED")
	for _, account := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			account.DisplayName(),
			account.Email,
			account.Role,
			yesNo(account.Verified),
		)
	}
	tw.Flush()
}

// RefreshRequests renders the current user's requests. The table is
// pre-filtered to the owning session.
func (r *ConsoleRenderer) RefreshRequests() {
	current, ok := r.currentAccount()
	if !ok {
		fmt.Fprintln(r.out, "Log in to see your requests.")
		return
	}

	requests, err := r.requests.ListFor(context.Background(), current.Email)
	if err != nil {
		fmt.Fprintf(r.out, "could not load requests: %v\n", err)
		return
	}
	if len(requests) == 0 {
		fmt.Fprintln(r.out, "No requests yet. Use 'new-request' to start one.")
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tITEMS\tSTATUS\tDATE")
	for _, request := range requests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			request.ID,
			request.Type,
			formatItems(request.Items),
			request.Status,
			request.Date,
		)
	}
	tw.Flush()
}

func (r *ConsoleRenderer) renderProfile() {
	current, ok := r.currentAccount()
	if !ok {
		fmt.Fprintln(r.out, "Not logged in.")
		return
	}
	fmt.Fprintf(r.out, "Name:  %s\n", current.DisplayName())
	fmt.Fprintf(r.out, "Email: %s\n", current.Email)
	fmt.Fprintf(r.out, "Role:  %s\n", current.Role)
}

func (r *ConsoleRenderer) renderDepartments() {
	departments, err := r.directory.Departments(context.Background())
	if err != nil {
		fmt.Fprintf(r.out, "could not load departments: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, department := range departments {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", department.ID, department.Name, department.Description)
	}
	tw.Flush()
}

func (r *ConsoleRenderer) currentAccount() (application.Account, bool) {
	if r.session == nil {
		return application.Account{}, false
	}
	return r.session.Current()
}

func formatItems(items []application.RequestItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

var _ application.Renderer = (*ConsoleRenderer)(nil)
