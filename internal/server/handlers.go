package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/longxinyang/bio/internal/content"
	"github.com/longxinyang/bio/internal/ui"
	"github.com/longxinyang/bio/internal/view"
)

// eventForm is what every UI control posts: the state the page was rendered
// with plus the action taken.
type eventForm struct {
	Dark    bool   `form:"dark"`
	Menu    bool   `form:"menu"`
	Lang    string `form:"lang" binding:"required,oneof=en zh"`
	Action  string `form:"action" binding:"required,oneof=toggle-theme toggle-lang toggle-menu select"`
	Section string `form:"section" binding:"omitempty,oneof=home projects learning notes about contact"`
	Origin  string `form:"origin" binding:"omitempty,oneof=menu bar"`
}

func (f eventForm) state() ui.State {
	return ui.State{Dark: f.Dark, MenuOpen: f.Menu, Locale: content.Locale(f.Lang)}
}

func (f eventForm) event() ui.Event {
	return ui.Event{
		Action:   ui.Action(f.Action),
		Section:  ui.Section(f.Section),
		FromMenu: f.Origin == "menu",
	}
}

// index serves a fresh page. The only inputs are the color scheme client
// hint and the configured fallback; nothing is remembered between loads.
// Without a hint and with the auto fallback the page carries a one-shot
// prefers-color-scheme check.
func (s *Server) index(c *gin.Context) {
	c.Header("Accept-CH", ui.PrefersColorSchemeHeader)
	c.Header("Critical-CH", ui.PrefersColorSchemeHeader)
	c.Header("Vary", ui.PrefersColorSchemeHeader)

	state := ui.FromHint(c.GetHeader(ui.PrefersColorSchemeHeader), s.cfg.Theme.Default)
	s.render(c, view.PageTemplate, state, "")
}

// event applies one UI action. htmx requests get the #app fragment; a plain
// form post gets the whole document.
func (s *Server) event(c *gin.Context) {
	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		s.log.Debug("Rejected ui event", zap.Error(err))
		c.String(http.StatusBadRequest, "invalid ui event")
		return
	}

	ev := form.event()
	next, scrollTo, err := ui.Reduce(form.state(), ev)
	if err != nil {
		s.log.Debug("Rejected ui event", zap.Error(err))
		c.String(http.StatusBadRequest, "invalid ui event")
		return
	}
	s.log.Debug("UI event",
		zap.String("action", string(ev.Action)),
		zap.String("section", string(scrollTo)),
		zap.Bool("from_menu", ev.FromMenu),
		zap.String("theme", next.Theme()),
		zap.String("locale", string(next.Locale)),
	)

	name := view.PageTemplate
	if c.GetHeader("HX-Request") == "true" {
		name = view.AppTemplate
	}
	s.render(c, name, next, scrollTo)
}

func (s *Server) render(c *gin.Context, name string, state ui.State, scrollTo ui.Section) {
	page, err := s.renderer.Page(state, scrollTo)
	if err != nil {
		s.log.Error("Building page", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	// Render fully before writing so a template failure never reaches the
	// client as a truncated 200.
	var buf bytes.Buffer
	if name == view.AppTemplate {
		err = s.renderer.RenderApp(&buf, page)
	} else {
		err = s.renderer.Render(&buf, page)
	}
	if err != nil {
		s.log.Error("Rendering page", zap.String("template", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Header("Content-Language", page.Lang)
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
