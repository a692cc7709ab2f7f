// Package server exposes palette generation over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huestep/internal/palette"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr        string
	ReadTimeout time.Duration

	// Presets is served by the preset endpoints. The zero value selects
	// the built-in table.
	Presets palette.PresetColors
}

// Server is the HTTP API.
type Server struct {
	opts   Options
	logger hclog.Logger
	engine *gin.Engine
}

// New builds a server and registers its routes. A nil logger discards output.
func New(opts Options, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Presets.Len() == 0 {
		opts.Presets = palette.Presets()
	}

	s := &Server{
		opts:   opts,
		logger: logger,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), requestLogger(logger))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "huestep",
		})
	})

	api := s.engine.Group("/api/v1")
	api.GET("/palette", s.handlePalette)
	api.GET("/presets", s.handlePresets)
	api.GET("/presets/:name", s.handlePreset)
	api.GET("/rgb", s.handleRGB)
	api.GET("/theme.css", s.handleThemeCSS)
}

// Handler returns the router for use with httptest or another server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger replaces gin's default logger with hclog.
func requestLogger(logger hclog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
