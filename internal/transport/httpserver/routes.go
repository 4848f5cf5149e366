package httpserver

import (
	"net/http"
	"time"

	"triplog/internal/auth"
	"triplog/internal/config"
	"triplog/internal/transport/httpserver/handler"
	"triplog/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, tokens *auth.JWT) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)

		r.Group(func(r chi.Router) {
			if !cfg.Auth.Disabled {
				r.Use(middleware.RequireAuth(tokens))
				r.Get("/auth/me", handlers.AuthMe)
			}

			r.Get("/trips", handlers.ListTrips)
			r.Post("/trips", handlers.CreateTrip)
			r.Get("/trips/{id}", handlers.GetTrip)
			r.Put("/trips/{id}", handlers.UpdateTrip)
			r.Delete("/trips/{id}", handlers.DeleteTrip)
			r.Get("/trips/{id}/photos", handlers.ListTripPhotos)
			r.Delete("/trips/{id}/photos", handlers.DeleteTripPhotos)

			r.Get("/photos", handlers.ListPhotos)
			r.Post("/photos", handlers.CreatePhoto)
			r.Delete("/photos/{id}", handlers.DeletePhoto)

			r.Get("/stats", handlers.StatsOverview)
			r.Get("/stats/countries", handlers.StatsCountries)
			r.Get("/stats/tags", handlers.StatsTags)

			r.Get("/export", handlers.Export)
			r.Post("/import", handlers.Import)
		})
	})

	return r
}
