package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/example/workforce-portal/internal/application"
	"github.com/example/workforce-portal/internal/logging"
)

// Notice keys used for the inline, auto-dismissing messages.
const (
	noticeLogin    = "login"
	noticeRegister = "register"
	noticeRequests = "requests"
)

// App binds the services to the terminal: it reads one command at a time,
// runs it to completion, and reflects the outcome through the renderer and
// the notice board.
type App struct {
	session   *application.SessionService
	employees *application.EmployeeService
	requests  *application.RequestService
	nav       *application.Navigator
	renderer  *ConsoleRenderer
	notices   *NoticeBoard
	prompter  *Prompter
	logger    *slog.Logger
	out       io.Writer
}

// NewApp wires the command loop.
func NewApp(session *application.SessionService, employees *application.EmployeeService, requests *application.RequestService, nav *application.Navigator, renderer *ConsoleRenderer, notices *NoticeBoard, prompter *Prompter, logger *slog.Logger, out io.Writer) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		session:   session,
		employees: employees,
		requests:  requests,
		nav:       nav,
		renderer:  renderer,
		notices:   notices,
		prompter:  prompter,
		logger:    logger,
		out:       out,
	}
}

// Run processes commands until the input ends or the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.printNotices(noticeLogin, noticeRegister, noticeRequests)

		command, err := a.prompter.Line(fmt.Sprintf("[%s]", a.nav.Current()))
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if command == "" {
			continue
		}

		cmdCtx := logging.ContextWithLogger(ctx, a.logger.With("command", command))
		if done := a.dispatch(cmdCtx, command); done {
			return nil
		}
	}
}

// dispatch runs one command and reports whether the loop should stop.
func (a *App) dispatch(ctx context.Context, command string) bool {
	switch strings.ToLower(command) {
	case "quit", "exit":
		return true
	case "help":
		a.printHelp()
	case "back":
		a.reportNavError(a.nav.Back())
	case "home", "register", "login", "verify", "verified", "profile",
		"employees", "departments", "accounts", "requests":
		a.open(ctx, application.Section(command))
	case "logout":
		if err := a.session.Logout(ctx); err != nil {
			fmt.Fprintf(a.out, "logout failed: %v\n", err)
		}
	case "add-employee":
		a.addEmployee(ctx)
	case "edit-employee":
		a.editEmployee(ctx)
	case "delete-employee":
		a.deleteEmployee(ctx)
	case "new-request":
		a.newRequest(ctx)
	case "add-item":
		a.addItem()
	case "remove-item":
		a.removeItem()
	case "submit-request":
		a.submitRequest(ctx)
	case "delete-request":
		a.deleteRequest(ctx)
	default:
		fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", command)
	}
	return false
}

// open navigates to a section, running the interactive flow attached to it.
// Sections behind authentication bounce anonymous users to a notice.
func (a *App) open(ctx context.Context, section application.Section) {
	if section.RequiresSession() {
		if _, ok := a.session.Current(); !ok {
			fmt.Fprintln(a.out, "Please log in first.")
			return
		}
	}

	switch section {
	case application.SectionRegister:
		a.reportNavError(a.nav.Show(section, false))
		a.register(ctx)
	case application.SectionLogin:
		a.reportNavError(a.nav.Show(section, false))
		a.login(ctx)
	case application.SectionVerify:
		a.verify(ctx)
	default:
		a.reportNavError(a.nav.Show(section, false))
	}
}

func (a *App) register(ctx context.Context) {
	params := application.RegisterParams{}
	var err error
	if params.FirstName, err = a.prompter.Line("First name"); err != nil {
		return
	}
	if params.LastName, err = a.prompter.Line("Last name"); err != nil {
		return
	}
	if params.Email, err = a.prompter.Line("Email"); err != nil {
		return
	}
	if params.Password, err = a.prompter.Password("Password"); err != nil {
		return
	}

	if _, err := a.session.Register(ctx, params); err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			a.notices.Post(noticeRegister, "Email already registered!")
			return
		}
		a.reportValidation(err, noticeRegister)
		return
	}

	fmt.Fprintf(a.out, "Verification pending for %s.\n", params.Email)
	a.reportNavError(a.nav.Show(application.SectionVerify, false))
}

func (a *App) login(ctx context.Context) {
	email, err := a.prompter.Line("Email")
	if err != nil {
		return
	}
	password, err := a.prompter.Password("Password")
	if err != nil {
		return
	}

	if _, err := a.session.Login(ctx, application.LoginParams{Email: email, Password: password}); err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			a.notices.Post(noticeLogin, "Invalid email, password, or account not verified")
			return
		}
		fmt.Fprintf(a.out, "login failed: %v\n", err)
	}
}

func (a *App) verify(ctx context.Context) {
	if _, err := a.session.Verify(ctx); err != nil {
		// A missing marker is a silent no-op.
		return
	}
	a.reportNavError(a.nav.Show(application.SectionVerified, false))
}

func (a *App) addEmployee(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	employee, err := a.promptEmployee(application.Employee{})
	if err != nil {
		return
	}
	if _, err := a.employees.Add(ctx, employee); err != nil {
		a.printValidation(err)
		return
	}
	a.renderer.RefreshEmployees()
}

func (a *App) editEmployee(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	id, err := a.prompter.Line("Employee ID to edit")
	if err != nil {
		return
	}

	existing, ok := a.findEmployee(ctx, id)
	if !ok {
		fmt.Fprintf(a.out, "no employee with id %q\n", id)
		return
	}

	updated, err := a.promptEmployee(existing)
	if err != nil {
		return
	}
	updated.ID = existing.ID

	if _, err := a.employees.Update(ctx, updated); err != nil {
		a.printValidation(err)
		return
	}
	a.renderer.RefreshEmployees()
}

func (a *App) deleteEmployee(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	id, err := a.prompter.Line("Employee ID to delete")
	if err != nil {
		return
	}
	confirmed, err := a.prompter.Confirm("Are you sure you want to delete this employee?")
	if err != nil || !confirmed {
		return
	}

	if err := a.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			fmt.Fprintf(a.out, "no employee with id %q\n", id)
			return
		}
		fmt.Fprintf(a.out, "delete failed: %v\n", err)
		return
	}
	a.renderer.RefreshEmployees()
}

func (a *App) newRequest(ctx context.Context) {
	if !a.requireSession() {
		return
	}

	// Opening the entry point always starts from an empty item list.
	a.requests.Reset()
	fmt.Fprintln(a.out, "New request started. Use 'add-item', then 'submit-request'.")
}

func (a *App) addItem() {
	if !a.requireSession() {
		return
	}

	name, err := a.prompter.Line("Item name")
	if err != nil {
		return
	}
	quantity, err := a.prompter.PositiveInt("Quantity")
	if err != nil {
		return
	}

	if err := a.requests.AddItem(name, quantity); err != nil {
		a.printValidation(err)
		return
	}
	a.printItems()
}

func (a *App) removeItem() {
	if !a.requireSession() {
		return
	}

	index, err := a.prompter.PositiveInt("Item number to remove")
	if err != nil {
		return
	}
	if err := a.requests.RemoveItem(index - 1); err != nil {
		fmt.Fprintln(a.out, "no such item")
		return
	}
	a.printItems()
}

func (a *App) submitRequest(ctx context.Context) {
	current, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "Please log in first.")
		return
	}

	requestType, err := a.prompter.Line("Request type (Equipment/Supplies/Travel/Other)")
	if err != nil {
		return
	}

	request, err := a.requests.Submit(ctx, application.SubmitRequestParams{
		OwnerEmail: current.Email,
		Type:       requestType,
	})
	if err != nil {
		a.printValidation(err)
		return
	}

	fmt.Fprintf(a.out, "Submitted %s.\n", request.ID)
	a.renderer.RefreshRequests()
}

func (a *App) deleteRequest(ctx context.Context) {
	current, ok := a.session.Current()
	if !ok {
		fmt.Fprintln(a.out, "Please log in first.")
		return
	}

	id, err := a.prompter.Line("Request ID to delete")
	if err != nil {
		return
	}
	confirmed, err := a.prompter.Confirm("Are you sure you want to delete this request?")
	if err != nil || !confirmed {
		return
	}

	if err := a.requests.Delete(ctx, current.Email, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			a.notices.Post(noticeRequests, fmt.Sprintf("No request %s in your list.", id))
			return
		}
		fmt.Fprintf(a.out, "delete failed: %v\n", err)
		return
	}
	a.renderer.RefreshRequests()
}

func (a *App) promptEmployee(defaults application.Employee) (application.Employee, error) {
	employee := application.Employee{}
	var err error
	if employee.ID, err = a.prompter.LineDefault("Employee ID", defaults.ID); err != nil {
		return application.Employee{}, err
	}
	if employee.Email, err = a.prompter.LineDefault("Email", defaults.Email); err != nil {
		return application.Employee{}, err
	}
	if employee.Position, err = a.prompter.LineDefault("Position", defaults.Position); err != nil {
		return application.Employee{}, err
	}
	if employee.Department, err = a.prompter.LineDefault("Department", defaults.Department); err != nil {
		return application.Employee{}, err
	}
	if employee.HireDate, err = a.prompter.LineDefault("Hire date", defaults.HireDate); err != nil {
		return application.Employee{}, err
	}
	return employee, nil
}

func (a *App) findEmployee(ctx context.Context, id string) (application.Employee, bool) {
	employees, err := a.employees.List(ctx)
	if err != nil {
		return application.Employee{}, false
	}
	for _, employee := range employees {
		if employee.ID == id {
			return employee, true
		}
	}
	return application.Employee{}, false
}

func (a *App) requireSession() bool {
	if _, ok := a.session.Current(); ok {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}

func (a *App) printItems() {
	items := a.requests.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items yet.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(a.out, "%d. %s (%d)\n", i+1, item.Name, item.Quantity)
	}
}

func (a *App) printNotices(keys ...string) {
	for _, key := range keys {
		if message, ok := a.notices.Active(key); ok {
			fmt.Fprintf(a.out, "! %s\n", message)
		}
	}
}

func (a *App) printValidation(err error) {
	var vErr *application.ValidationError
	if errors.As(err, &vErr) {
		for _, message := range vErr.FieldErrors {
			fmt.Fprintf(a.out, "! %s\n", message)
		}
		return
	}
	fmt.Fprintf(a.out, "! %v\n", err)
}

func (a *App) reportValidation(err error, noticeKey string) {
	var vErr *application.ValidationError
	if errors.As(err, &vErr) {
		for _, message := range vErr.FieldErrors {
			a.notices.Post(noticeKey, message)
		}
		return
	}
	fmt.Fprintf(a.out, "! %v\n", err)
}

func (a *App) reportNavError(err error) {
	if err != nil {
		fmt.Fprintf(a.out, "navigation failed: %v\n", err)
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, strings.TrimSpace(`
Sections:  home register login verify profile employees departments accounts requests back
Session:   logout
Employees: add-employee edit-employee delete-employee
Requests:  new-request add-item remove-item submit-request delete-request
Other:     help quit`))
}
