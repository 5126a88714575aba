package httpapi

import (
	stdhttp "net/http"

	"promptserver/internal/http/handlers"
	"promptserver/internal/infra"
	"promptserver/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/tokens", func(r chi.Router) {
		r.Get("/", app.TokensList)
		r.Post("/validate", app.TokenValidate)
	})

	r.Route("/v1/prompts", func(r chi.Router) {
		r.Post("/resolve", app.PromptResolve)
		r.Post("/validate", app.PromptValidate)
		r.Post("/enhance", app.PromptEnhance)
		r.Post("/build", app.PromptBuild)
	})

	return r
}
