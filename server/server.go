package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/pager/config"
	"github.com/ncobase/pager/ctxutil"
	"github.com/ncobase/pager/logging/logger"
	"github.com/ncobase/pager/net/resp"
)

// TraceHeader carries the request trace ID
const TraceHeader = "X-Trace-Id"

// Server represents the pager HTTP server.
type Server struct {
	config  *config.Config
	logger  *logger.Logger
	handler *Handler
	engine  *gin.Engine
}

// New creates a new server instance.
func New(cfg *config.Config, l *logger.Logger, h *Handler) *Server {
	switch cfg.RunMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.RunMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{config: cfg, logger: l, handler: h}
	s.engine = s.setupRouter()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// setupRouter sets up the Gin router.
func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.traceMiddleware())
	r.Use(s.loggerMiddleware())

	r.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})

	s.handler.RegisterRoutes(r.Group("/api/v1"))
	return r
}

// traceMiddleware ensures every request carries a trace ID.
func (s *Server) traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		if id := c.GetHeader(TraceHeader); id != "" {
			ctx = ctxutil.SetTraceID(ctx, id)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, traceID)
		c.Next()
	}
}

// loggerMiddleware creates request logging middleware.
func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Infof(c.Request.Context(), "%s %s %d %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
// The server section is read once; reloads take effect on the next Run.
func (s *Server) Run(ctx context.Context) error {
	sc := s.config.GetServer()
	srv := &http.Server{
		Addr:         sc.Addr(),
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(ctx, "starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Infof(ctx, "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sc.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
