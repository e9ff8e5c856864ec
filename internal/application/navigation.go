package application

import (
	"fmt"
	"log/slog"
)

// Section identifies one of the mutually exclusive portal views.
type Section string

const (
	SectionHome        Section = "home"
	SectionRegister    Section = "register"
	SectionLogin       Section = "login"
	SectionVerify      Section = "verify"
	SectionVerified    Section = "verified"
	SectionProfile     Section = "profile"
	SectionEmployees   Section = "employees"
	SectionDepartments Section = "departments"
	SectionAccounts    Section = "accounts"
	SectionRequests    Section = "requests"
)

// Sections lists the closed set of valid sections in display order.
func Sections() []Section {
	return []Section{
		SectionHome,
		SectionRegister,
		SectionLogin,
		SectionVerify,
		SectionVerified,
		SectionProfile,
		SectionEmployees,
		SectionDepartments,
		SectionAccounts,
		SectionRequests,
	}
}

// Valid reports whether the section belongs to the closed set.
func (s Section) Valid() bool {
	switch s {
	case SectionHome, SectionRegister, SectionLogin, SectionVerify,
		SectionVerified, SectionProfile, SectionEmployees,
		SectionDepartments, SectionAccounts, SectionRequests:
		return true
	}
	return false
}

// RequiresSession reports whether the section is only reachable while
// authenticated.
func (s Section) RequiresSession() bool {
	switch s {
	case SectionProfile, SectionEmployees, SectionDepartments,
		SectionAccounts, SectionRequests:
		return true
	}
	return false
}

// Renderer is the presentation collaborator driven by the navigator. It makes
// exactly one section visible and refreshes the table views backed by the
// document store.
type Renderer interface {
	ShowSection(section Section)
	RefreshEmployees()
	RefreshAccounts()
	RefreshRequests()
}

// sectionRefresh maps sections to the table refresh triggered on entry.
var sectionRefresh = map[Section]func(Renderer){
	SectionEmployees: Renderer.RefreshEmployees,
	SectionAccounts:  Renderer.RefreshAccounts,
	SectionRequests:  Renderer.RefreshRequests,
}

// Navigator tracks the visible section with a back history of depth one.
type Navigator struct {
	renderer Renderer
	logger   *slog.Logger

	current  Section
	previous Section
}

// NewNavigator constructs a navigator starting at the home section.
func NewNavigator(renderer Renderer, logger *slog.Logger) *Navigator {
	return &Navigator{
		renderer: renderer,
		logger:   defaultLogger(logger),
		current:  SectionHome,
		previous: SectionHome,
	}
}

// Current returns the visible section.
func (n *Navigator) Current() Section {
	if n == nil {
		return SectionHome
	}
	return n.current
}

// Previous returns the section the navigator would return to.
func (n *Navigator) Previous() Section {
	if n == nil {
		return SectionHome
	}
	return n.previous
}

// Show makes the target section the only visible one. Unless skipHistory is
// set, the departed section becomes the back target. Entering a table-backed
// section refreshes its view from current store contents.
func (n *Navigator) Show(section Section, skipHistory bool) error {
	if n == nil {
		return fmt.Errorf("Navigator is nil")
	}
	if !section.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	if !skipHistory && n.current != section {
		n.previous = n.current
	}

	if n.renderer != nil {
		n.renderer.ShowSection(section)
		if refresh := sectionRefresh[section]; refresh != nil {
			refresh(n.renderer)
		}
	}

	n.current = section
	n.logger.Debug("section shown", "section", section, "previous", n.previous)
	return nil
}

// Back returns to the previous section. The history is one level deep: the
// departed section becomes the new back target, so repeated calls toggle
// between two sections.
func (n *Navigator) Back() error {
	if n == nil {
		return fmt.Errorf("Navigator is nil")
	}

	departed := n.current
	if err := n.Show(n.previous, true); err != nil {
		return err
	}
	n.previous = departed
	return nil
}
