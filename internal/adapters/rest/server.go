package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MaryChris21/Estify/internal/constants"
	"github.com/MaryChris21/Estify/internal/core/domain"
	"github.com/MaryChris21/Estify/internal/core/port"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig, handlers *PropertyHandlers, auth *AuthMiddleware, baseLogger port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg.AllowedOrigins, handlers, auth, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger.WithFields(port.Fields{"component": "rest_server"}),
	}
}

// NewRouter builds the /api/v1 route tree.
func NewRouter(allowedOrigins []string, handlers *PropertyHandlers, auth *AuthMiddleware, baseLogger port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constants.TraceIDHeader},
		ExposedHeaders:   []string{constants.TraceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route(constants.APIPrefix, func(r chi.Router) {
		// public
		r.Get("/properties", handlers.ListProperties)
		r.Get("/properties/{propertyID}", handlers.GetProperty)
		r.Get("/properties/{propertyID}/bookings", handlers.PropertyBookings)

		// any signed-in role
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", handlers.ListBookings)
				r.Post("/", handlers.CreateBooking)
				r.Get("/{bookingID}", handlers.GetBooking)
				r.Patch("/{bookingID}", handlers.UpdateBooking)
				r.Delete("/{bookingID}", handlers.DeleteBooking)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.RequireRole(domain.RoleAgent))

			r.Route("/agent/properties", func(r chi.Router) {
				r.Get("/", handlers.ListMine)
				r.Get("/live", handlers.ListMyListings)
				r.Post("/", handlers.CreateListing)
				r.Post("/requests", handlers.SubmitAddRequest)
				r.Post("/requests/update", handlers.SubmitUpdateRequest)
				r.Patch("/{propertyID}", handlers.UpdateListing)
				r.Delete("/{propertyID}", handlers.DeleteListing)
				r.Delete("/{propertyID}/request", handlers.SubmitDeleteRequest)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(auth.RequireRole(domain.RoleAdmin))

			r.Get("/admin/requests", handlers.ListPending)
			r.Post("/admin/requests/{propertyID}/approve", handlers.ApproveRequest)
			r.Post("/admin/requests/{propertyID}/reject", handlers.RejectRequest)
			r.Get("/admin/reports/properties", handlers.PropertyReport)
			r.Post("/admin/bookings/{bookingID}/confirm", handlers.ConfirmBooking)
			r.Post("/admin/bookings/{bookingID}/reject", handlers.RejectBooking)
		})
	})

	return r
}

// Start blocks until the server fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
