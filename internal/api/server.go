package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/budget-guard-api/internal/api/handler"
	"github.com/vfg2006/budget-guard-api/internal/api/handler/router"
	"github.com/vfg2006/budget-guard-api/internal/config"
	"github.com/vfg2006/budget-guard-api/internal/scheduler"
	"github.com/vfg2006/budget-guard-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-guard-api/internal/usecases/enforcing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/managing"
	"github.com/vfg2006/budget-guard-api/internal/usecases/spending"
	"github.com/vfg2006/budget-guard-api/pkg/log"
	"github.com/vfg2006/budget-guard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services groups what the HTTP surface exposes.
type Services struct {
	Managing      managing.ManagingService
	Spending      spending.SpendService
	Enforcer      enforcing.Enforcer
	Jobs          scheduler.JobRunner
	Authenticator authenticating.Authenticator
	Database      handler.Pinger
}

func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Brands(services.Managing, services.Spending, services.Enforcer)...),
		router.WithRoutes(handler.Campaigns(services.Managing, services.Spending, services.Enforcer)...),
		router.WithRoutes(handler.Schedules(services.Managing)...),
		router.WithRoutes(handler.Spends(services.Spending)...),
		router.WithRoutes(handler.Enforcement(services.Jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil || services.Jobs == nil {
		return nil, fmt.Errorf("api: authenticator and job runner are required")
	}

	if !services.Authenticator.Enabled() {
		log.L.Warn("AUTH_SECRET is empty: every request is treated as an admin operator")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Interrupt signal received")
	case <-ctx.Done():
		log.L.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Shutting down server gracefully")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Error during server shutdown")
		return err
	}

	log.L.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
