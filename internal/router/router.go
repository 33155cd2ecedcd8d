package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/devllmops-quiz/docs"
	"github.com/saulo-duarte/devllmops-quiz/internal/config"
	"github.com/saulo-duarte/devllmops-quiz/internal/metrics"
	"github.com/saulo-duarte/devllmops-quiz/internal/middlewares"
	"github.com/saulo-duarte/devllmops-quiz/internal/quiz"
	"github.com/saulo-duarte/devllmops-quiz/internal/web"
)

type RouterConfig struct {
	QuizHandler    *quiz.Handler
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: config.Logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
		r.Handle("/metrics", cfg.Metrics.Handler())
	}

	r.Get("/", web.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	r.Get("/health", Health)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/api", quiz.Routes(cfg.QuizHandler))

	return r
}

// Health godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
