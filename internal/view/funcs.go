package view

import (
	"html/template"
	"strings"

	"github.com/longxinyang/bio/internal/content"
	"github.com/longxinyang/bio/internal/ui"
)

// Badge styles. Primary and outline are the two semantic tag styles; success
// and pending only color publication states.
const (
	BadgePrimary = "primary"
	BadgeOutline = "outline"
	BadgeSuccess = "success"
	BadgePending = "pending"
)

// Badge is a small pill.
type Badge struct {
	Style string
	Text  string
}

// Heading is a section title with an optional subtitle.
type Heading struct {
	Title    string
	Subtitle string
}

// Control carries what a UI control form posts back: the current state plus
// the action it triggers.
type Control struct {
	State   ui.State
	Action  string
	Section ui.Section
	Origin  string
}

// Swap is the hx-swap value; selecting a section also scrolls to it.
func (c Control) Swap() string {
	if c.Section != "" {
		return "outerHTML show:" + c.Section.Anchor() + ":top"
	}
	return "outerHTML"
}

// FormAction keeps the fragment so a plain form post still lands on the
// selected section.
func (c Control) FormAction() string {
	if c.Section != "" {
		return EventPath + c.Section.Anchor()
	}
	return EventPath
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"badge": func(style, text string) Badge {
			return Badge{Style: style, Text: text}
		},
		"heading": func(title, subtitle string) Heading {
			return Heading{Title: title, Subtitle: subtitle}
		},
		"card": func(extra ...string) string {
			return strings.TrimSpace("card " + strings.Join(extra, " "))
		},
		"pubBadge": publicationBadgeStyle,
		"control": func(p *Page, action string, section ui.Section, origin string) Control {
			return Control{State: p.State, Action: action, Section: section, Origin: origin}
		},
	}
}

func publicationBadgeStyle(s content.PublicationStatus) string {
	if s == content.StatusPublished {
		return BadgeSuccess
	}
	return BadgePending
}
