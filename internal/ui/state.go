// Package ui holds the page's ephemeral state (theme, menu, locale) and the
// user actions that change it. State is never persisted: a fresh page load
// starts again from Initial.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/longxinyang/bio/internal/content"
)

// PrefersColorSchemeHeader is the client hint carrying the browser's ambient
// color-scheme preference.
const PrefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// ThemePreference is the fallback used when the client sends no hint.
type ThemePreference string

const (
	ThemeAuto  ThemePreference = "auto"
	ThemeLight ThemePreference = "light"
	ThemeDark  ThemePreference = "dark"
)

func (p ThemePreference) Valid() bool {
	switch p {
	case ThemeAuto, ThemeLight, ThemeDark:
		return true
	}
	return false
}

// State is owned by the root composition and passed read-only to sections.
type State struct {
	Dark     bool
	MenuOpen bool
	Locale   content.Locale

	// Ambient marks a fresh page whose theme the server could not decide;
	// the page asks the browser's prefers-color-scheme once on load. It is
	// never posted back, so every event clears it.
	Ambient bool
}

// Initial returns the state of a fresh page load.
func Initial(prefersDark bool) State {
	return State{Dark: prefersDark, Locale: content.DefaultLocale}
}

// ProbeTheme reports whether the page should start dark, given the raw
// Sec-CH-Prefers-Color-Scheme value. Only an absent or unrecognized hint
// consults the fallback.
func ProbeTheme(hint string, fallback ThemePreference) bool {
	switch normalizeHint(hint) {
	case "dark":
		return true
	case "light":
		return false
	}
	return fallback == ThemeDark
}

// FromHint is the state of a fresh page load. Browsers that do not send the
// client hint are left to the in-page check when the fallback is auto.
func FromHint(hint string, fallback ThemePreference) State {
	s := Initial(ProbeTheme(hint, fallback))
	switch normalizeHint(hint) {
	case "dark", "light":
	default:
		s.Ambient = fallback == ThemeAuto
	}
	return s
}

func normalizeHint(hint string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(hint), `"`))
}

// Theme returns "dark" or "light".
func (s State) Theme() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

// ScopeClass is the class put on the root element; it is the only place the
// theme is reflected.
func (s State) ScopeClass() string {
	if s.Dark {
		return "dark"
	}
	return ""
}

// Section is one of the six anchored page sections.
type Section string

const (
	SectionHome     Section = "home"
	SectionProjects Section = "projects"
	SectionLearning Section = "learning"
	SectionNotes    Section = "notes"
	SectionAbout    Section = "about"
	SectionContact  Section = "contact"
)

var sections = []Section{
	SectionHome,
	SectionProjects,
	SectionLearning,
	SectionNotes,
	SectionAbout,
	SectionContact,
}

// Sections returns the sections in navigation order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Anchor returns the in-page fragment, e.g. "#notes".
func (s Section) Anchor() string {
	return "#" + string(s)
}

func (s Section) Valid() bool {
	for _, v := range sections {
		if s == v {
			return true
		}
	}
	return false
}

// Label picks the navigation label for s from the dictionary.
func (s Section) Label(n content.Navigation) string {
	switch s {
	case SectionHome:
		return n.Home
	case SectionProjects:
		return n.Projects
	case SectionLearning:
		return n.Learning
	case SectionNotes:
		return n.Notes
	case SectionAbout:
		return n.About
	case SectionContact:
		return n.Contact
	}
	return ""
}

// Action is a user-triggered transition.
type Action string

const (
	ActionToggleTheme  Action = "toggle-theme"
	ActionToggleLocale Action = "toggle-lang"
	ActionToggleMenu   Action = "toggle-menu"
	ActionSelect       Action = "select"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownSection = errors.New("unknown section")
)

// Event is one user interaction. FromMenu is set when the control lives in
// the collapsed menu.
type Event struct {
	Action   Action
	Section  Section
	FromMenu bool
}

// Reduce applies ev to s. For ActionSelect it also returns the section to
// scroll to; otherwise the returned section is empty.
func Reduce(s State, ev Event) (State, Section, error) {
	switch ev.Action {
	case ActionToggleTheme:
		s.Dark = !s.Dark
		if ev.FromMenu {
			s.MenuOpen = false
		}
		return s, "", nil
	case ActionToggleLocale:
		s.Locale = s.Locale.Toggle()
		if ev.FromMenu {
			s.MenuOpen = false
		}
		return s, "", nil
	case ActionToggleMenu:
		s.MenuOpen = !s.MenuOpen
		return s, "", nil
	case ActionSelect:
		if !ev.Section.Valid() {
			return s, "", fmt.Errorf("%w: %q", ErrUnknownSection, ev.Section)
		}
		s.MenuOpen = false
		return s, ev.Section, nil
	}
	return s, "", fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
}
