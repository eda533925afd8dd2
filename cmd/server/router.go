package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/voyago/voyago-api/internal/api"
	apiMiddleware "github.com/voyago/voyago-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	itineraryHandler := api.NewItineraryHandler(app.itineraryService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		// Itinerary endpoints require a bearer token
		r.Route("/itineraries", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/", itineraryHandler.ListOwned)
			r.Get("/getall", itineraryHandler.ListForUser)
			r.Get("/{id}", itineraryHandler.GetByID)
			r.Post("/single-city", itineraryHandler.CreateSingleCity)
			r.Post("/multi-city", itineraryHandler.CreateMultiCity)
			r.Delete("/{itineraryId}/locations/{locationId}", itineraryHandler.DeleteLocation)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
