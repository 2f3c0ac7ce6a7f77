// Route registration and go-chi router setup.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/matiasleandrokruk/a2ui/internal/api/handlers"
)

// NewRouter creates and configures a chi router with all routes.
// usageLog may be nil when no database is configured.
func NewRouter(registry handlers.ProviderLister, generator handlers.Generator, usageLog handlers.UsageLogger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The rendering client is served from a different origin in
	// development, so the API answers cross-origin requests openly.
	// No cookies or credentials cross this surface.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	// Health check — used by load balancers and health probes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	providersHandler := handlers.NewProvidersHandler(registry)
	chatHandler := handlers.NewChatHandler(generator, usageLog)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"message":"A2UI backend","endpoints":["/api/providers","/api/chat"]}`)) //nolint:errcheck
		})
		r.Get("/providers", providersHandler.List) // GET /api/providers
		r.Post("/chat", chatHandler.Generate)      // POST /api/chat
	})

	return r
}
