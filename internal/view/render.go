// Package view composes the page from the active dictionary and UI state.
// Templates and static assets are embedded; nothing is read from disk.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/longxinyang/bio/internal/content"
	"github.com/longxinyang/bio/internal/ui"
)

const (
	PageTemplate = "page"
	AppTemplate  = "app"

	// EventPath is where every UI control posts its event.
	EventPath = "/ui/event"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Options configures a Renderer.
type Options struct {
	// Now supplies the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Renderer owns the parsed templates and the pre-rendered biography
// paragraphs of every locale. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
	bio  map[content.Locale][]template.HTML
}

// New parses the embedded templates and renders each locale's biography
// Markdown once.
func New(opts Options) (*Renderer, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	bio := make(map[content.Locale][]template.HTML, len(content.Locales()))
	for _, l := range content.Locales() {
		d, err := content.Resolve(l)
		if err != nil {
			return nil, err
		}
		paragraphs := make([]template.HTML, 0, len(d.PersonalInfo.Bio))
		for i, p := range d.PersonalInfo.Bio {
			var buf bytes.Buffer
			if err := md.Convert([]byte(p), &buf); err != nil {
				return nil, fmt.Errorf("rendering %s bio paragraph %d: %w", l, i, err)
			}
			paragraphs = append(paragraphs, template.HTML(buf.String()))
		}
		bio[l] = paragraphs
	}

	return &Renderer{tmpl: tmpl, now: now, bio: bio}, nil
}

// NavLink is one navigation entry.
type NavLink struct {
	Section ui.Section
	Label   string
	Href    string
}

// Page is the view model handed to the templates.
type Page struct {
	State    ui.State
	Dict     *content.Dictionary
	Lang     string
	Nav      []NavLink
	Contact  content.Contact
	Skills   []string
	Bio      []template.HTML
	Year     int
	ScrollTo ui.Section
}

// Page derives the active dictionary from the state's locale and builds the
// view model. scrollTo may be empty.
func (r *Renderer) Page(s ui.State, scrollTo ui.Section) (*Page, error) {
	dict, err := content.Resolve(s.Locale)
	if err != nil {
		return nil, err
	}
	s.Locale = dict.Locale

	nav := make([]NavLink, 0, len(ui.Sections()))
	for _, sec := range ui.Sections() {
		nav = append(nav, NavLink{Section: sec, Label: sec.Label(dict.Navigation), Href: sec.Anchor()})
	}

	return &Page{
		State:    s,
		Dict:     dict,
		Lang:     dict.Locale.Tag().String(),
		Nav:      nav,
		Contact:  content.Owner,
		Skills:   content.Skills,
		Bio:      r.bio[dict.Locale],
		Year:     r.now().Year(),
		ScrollTo: scrollTo,
	}, nil
}

// Render writes the full HTML document.
func (r *Renderer) Render(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, PageTemplate, p)
}

// RenderApp writes only the #app fragment, which is what UI events swap.
func (r *Renderer) RenderApp(w io.Writer, p *Page) error {
	return r.tmpl.ExecuteTemplate(w, AppTemplate, p)
}
