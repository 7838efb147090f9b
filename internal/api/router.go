package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-coach/docs"
	"github.com/blaisecz/sleep-coach/internal/api/handler"
	"github.com/blaisecz/sleep-coach/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	entryHandler     *handler.EntryHandler
	analyticsHandler *handler.AnalyticsHandler
	adviceHandler    *handler.AdviceHandler
}

func NewRouter(entryHandler *handler.EntryHandler, analyticsHandler *handler.AnalyticsHandler, adviceHandler *handler.AdviceHandler) *Router {
	return &Router{
		entryHandler:     entryHandler,
		analyticsHandler: analyticsHandler,
		adviceHandler:    adviceHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", rt.entryHandler.Save)
			r.Get("/", rt.entryHandler.List)
			r.Delete("/", rt.entryHandler.Reset)
			r.Get("/{date}", rt.entryHandler.GetByDate)
		})

		r.Get("/analytics/weekly", rt.analyticsHandler.Weekly)
		r.Get("/export", rt.analyticsHandler.Export)

		r.Route("/advice", func(r chi.Router) {
			r.Get("/", rt.adviceHandler.Get)
			r.Post("/feedback", rt.adviceHandler.PostFeedback)
		})
	})

	return r
}
