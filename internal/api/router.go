package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "prism-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, profileHandler *ProfileHandler, modelHandler *ModelHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON API routes get a request timeout so client
		// connections cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Contexts ---
			r.Get("/contexts", chatHandler.HandleListContexts)
			r.Get("/contexts/{contextID}", chatHandler.HandleGetContext)
			r.Put("/contexts/{contextID}/title", chatHandler.HandleUpdateContextTitle)
			r.Delete("/contexts/{contextID}", chatHandler.HandleDeleteContext)

			// --- Profile & credentials ---
			r.Get("/profile", profileHandler.HandleGetProfile)
			r.Put("/profile", profileHandler.HandleSaveProfile)
			r.Put("/keys/openrouter", profileHandler.HandleSetAggregatorKey)
			r.Delete("/keys/openrouter", profileHandler.HandleDeleteAggregatorKey)

			// --- Models ---
			r.Get("/models", modelHandler.HandleListModels)
			r.Put("/models/preferences", modelHandler.HandleSetModelPreference)
		})

		// Dispatch can legitimately take a provider timeout plus a fallback
		// attempt, so it lives outside the 60s middleware group and is
		// bounded by the per-call provider timeouts instead.
		r.Group(func(r chi.Router) {
			r.Post("/contexts/messages", chatHandler.HandleSendMessage)
		})
	})

	return r
}
