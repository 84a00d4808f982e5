// Package server wires the HTTP API together: router, middleware and the
// serving loop with graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	costshandlers "github.com/costlens/costlens/pkg/handlers/costs"
	inventoryhandlers "github.com/costlens/costlens/pkg/handlers/inventory"
	"github.com/costlens/costlens/pkg/handlers/render"
	savingshandlers "github.com/costlens/costlens/pkg/handlers/savings"
	costlensmiddleware "github.com/costlens/costlens/pkg/server/middleware"
	"github.com/costlens/costlens/pkg/services/aggregation"
	"github.com/costlens/costlens/pkg/services/inventory"
	"github.com/costlens/costlens/pkg/services/savings"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Inventory inventory.Service
	Savings   savings.Service
	Costs     aggregation.Engine
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API router from the configured dependencies.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies

	inventoryHandler := inventoryhandlers.NewHandler(deps.Inventory)
	savingsHandler := savingshandlers.NewHandler(deps.Savings)
	costsHandler := costshandlers.NewHandler(deps.Costs)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(costlensmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		inventoryHandler.Routes(r)
		savingsHandler.Routes(r)
		costsHandler.Routes(r)

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			render.JSON(w, req, http.StatusOK, map[string]string{
				"status": "healthy",
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
		})
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
		shutdownTimeout: timeout,
	}
}

// Start serves until the listener fails or a termination signal arrives,
// then drains outstanding requests within the shutdown timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
