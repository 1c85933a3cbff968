package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/day/today", handlers.GetToday)
		r.Get("/day/range", handlers.GetRange)
		r.Get("/day/{date}", handlers.GetDay)
		r.Get("/month/{year}/{month}", handlers.GetMonth)
		r.Get("/holidays/{year}", handlers.GetHolidays)
		r.Get("/calendar/{year}.ics", handlers.GetCalendarFeed)
		r.Get("/meta", handlers.GetMeta)
	})

	return r
}
