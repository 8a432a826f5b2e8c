package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Quartermaster/internal/colony"
	"github.com/MikeSquared-Agency/Quartermaster/internal/defs"
	"github.com/MikeSquared-Agency/Quartermaster/internal/passion"
	"github.com/MikeSquared-Agency/Quartermaster/internal/scoring"
	"github.com/MikeSquared-Agency/Quartermaster/internal/store"
)

func NewRouter(s store.Store, feed *colony.Feed, engine *scoring.Engine, provider defs.Provider, passions passion.Provider, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	presets := NewPresetsHandler(s, engine.Catalog)
	rules := NewRulesHandler(s, engine)
	evaluate := NewEvaluateHandler(s, feed, engine, provider, passions)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/presets", presets.Create)
		r.Get("/presets", presets.List)
		r.Get("/presets/{id}", presets.Get)
		r.Patch("/presets/{id}", presets.Update)
		r.Delete("/presets/{id}", presets.Delete)
		r.Get("/presets/{id}/summary", presets.Summary)

		r.Get("/roles", rules.Roles)
		r.Get("/rules/{role}", rules.Get)
		r.Put("/rules/{role}/weights", rules.SetWeight)
		r.Delete("/rules/{role}/weights/{stat}", rules.DeleteWeight)

		r.Post("/match", evaluate.Match)
		r.Get("/rank/{role}", evaluate.Rank)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", evaluate.Stats)
			r.Post("/rules/{role}/reset", rules.Reset)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
