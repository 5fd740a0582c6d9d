// Package server serves the portfolio page and the UI event endpoint.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/longxinyang/bio/internal/config"
	"github.com/longxinyang/bio/internal/ui"
	"github.com/longxinyang/bio/internal/view"
)

// pageRenderer is the part of view.Renderer the handlers use.
type pageRenderer interface {
	Page(s ui.State, scrollTo ui.Section) (*view.Page, error)
	Render(w io.Writer, p *view.Page) error
	RenderApp(w io.Writer, p *view.Page) error
}

// Server owns the gin engine and the HTTP listener.
type Server struct {
	cfg        *config.Config
	log        *zap.Logger
	renderer   pageRenderer
	engine     *gin.Engine
	salt       string
	httpServer *http.Server
}

// New wires routes and middleware. The client hashing salt is generated per
// process, so hashes cannot be correlated across restarts.
func New(cfg *config.Config, log *zap.Logger, renderer *view.Renderer) (*Server, error) {
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		cfg:      cfg,
		log:      log,
		renderer: renderer,
		salt:     salt,
	}
	s.engine = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(recovery(s.log))
	r.Use(requestLogger(s.log, s.salt, s.cfg.Server.TrustDNT))

	r.StaticFS("/static", http.FS(view.Static()))

	r.GET("/", s.index)
	r.POST(view.EventPath, s.event)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens until ctx is cancelled, then drains in-flight requests for up
// to server.shutdown_timeout.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", zap.String("addr", s.httpServer.Addr), zap.String("mode", gin.Mode()))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("Shutdown complete")
	return nil
}
