package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	menuhandler "github.com/mltpascual/ordertaker/pkg/handlers/menu"
	ordershandler "github.com/mltpascual/ordertaker/pkg/handlers/orders"
	reportshandler "github.com/mltpascual/ordertaker/pkg/handlers/reports"

	ordertakermiddleware "github.com/mltpascual/ordertaker/pkg/server/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Orders  ordershandler.Service
	Menu    menuhandler.Service
	Reports reportshandler.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(&logger, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

// ConfigureRouter wires every API route. Split out from NewWebAPI so
// tests can drive the mux directly with httptest.
func ConfigureRouter(logger *zerolog.Logger, deps Dependencies) *chi.Mux {
	ordersHandler := ordershandler.NewHandler(deps.Orders)
	menuHandler := menuhandler.NewHandler(deps.Menu)
	reportsHandler := reportshandler.NewHandler(deps.Reports)

	router := chi.NewRouter()

	router.Use(ordertakermiddleware.Logger(logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(ordertakermiddleware.UserScope)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordersHandler.List)
			r.Post("/", ordersHandler.Create)
			r.Get("/{id}", ordersHandler.Get)
			r.Put("/{id}", ordersHandler.Update)
			r.Delete("/{id}", ordersHandler.Delete)
			r.Post("/{id}/complete", ordersHandler.Complete)
			r.Post("/{id}/reopen", ordersHandler.Reopen)
			r.Post("/{id}/duplicate", ordersHandler.Duplicate)
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.List)
			r.Post("/", menuHandler.Create)
			r.Get("/{id}", menuHandler.Get)
			r.Put("/{id}", menuHandler.Update)
			r.Delete("/{id}", menuHandler.Delete)
		})

		r.Get("/reports/sales", reportsHandler.SalesReport)
	})

	return router
}

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

		// Give outstanding requests a deadline for completion.
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
