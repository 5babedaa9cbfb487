package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ignite/moodletter/internal/tracking"
)

// SetupRoutes configures the full route tree: the management API under /api
// and the recipient-facing tracking surface at the root.
func SetupRoutes(h *Handlers, th *tracking.Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", h.HealthCheck)

	// Management API
	r.Route("/api", func(r chi.Router) {
		r.Get("/moods", h.HandleListMoods)

		r.Route("/recipients", func(r chi.Router) {
			r.Get("/", h.HandleListRecipients)
			r.Post("/", h.HandleAddRecipient)
			r.Put("/{id}", h.HandleUpdateRecipient)
			r.Delete("/{id}", h.HandleRemoveRecipient)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", h.HandleListGroups)
			r.Post("/", h.HandleCreateGroup)
			r.Put("/{id}", h.HandleUpdateGroup)
			r.Delete("/{id}", h.HandleRemoveGroup)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.HandleListCampaigns)
			r.Post("/", h.HandleSendCampaign)
			r.Get("/{id}", h.HandleGetCampaign)
			r.Get("/{id}/analytics", h.HandleCampaignAnalytics)
		})
	})

	// Recipient-facing tracking links
	r.Get("/view/{campaignID}/{recipientID}", th.HandleView)
	r.Post("/view/{campaignID}/{recipientID}/click", th.HandleClick)
	r.Get("/track/open/{campaignID}/{recipientID}", th.HandlePixel)

	return r
}
