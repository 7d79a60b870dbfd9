package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aditya27268/Ecommerce-Assistant/engine/agent"
	"github.com/Aditya27268/Ecommerce-Assistant/engine/order"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/config"
	"github.com/Aditya27268/Ecommerce-Assistant/pkg/logger"
)

// shutdownTimeout bounds how long in-flight requests may finish on shutdown.
const shutdownTimeout = 10 * time.Second

// Server is the thin HTTP adapter in front of the intent router and the
// mock order service.
type Server struct {
	cfg    *config.ServerConfig
	agent  *agent.Router
	orders *order.Service
	log    logger.Logger
	http   *http.Server
}

func New(cfg *config.ServerConfig, agentRouter *agent.Router, orders *order.Service, log logger.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if agentRouter == nil {
		return nil, errors.New("server: agent router is required")
	}
	if orders == nil {
		return nil, errors.New("server: order service is required")
	}
	if log == nil {
		log = logger.NewLogger(nil)
	}
	s := &Server{cfg: cfg, agent: agentRouter, orders: orders, log: log}
	engine := s.buildEngine()
	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware(s.log))
	engine.Use(loggingMiddleware())
	s.registerRoutes(engine)
	return engine
}

// Handler exposes the configured engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.cfg.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen on %s: %w", s.cfg.Addr(), err)
		}
		return nil
	case <-ctx.Done():
	}
	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return <-errCh
}
