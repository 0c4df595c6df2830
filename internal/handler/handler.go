package handler

import (
	"html/template"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/cache"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/config"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/dashboard"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	dashboard   *dashboard.Dashboard
	translator  ut.Translator
	figureCache cache.FigureCache
	page        *template.Template

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, dash *dashboard.Dashboard, figureCache cache.FigureCache) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	page, err := parsePageTemplate()
	if err != nil {
		return nil, err
	}

	if figureCache == nil {
		figureCache = cache.Noop{}
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		dashboard:   dash,
		translator:  trans,
		figureCache: figureCache,
		page:        page,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(middleware.RequestID)
	h.Mux.Use(middleware.RealIP)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/", h.GetDashboardPage)
	h.Mux.Get("/healthcheck", h.Healthcheck)
	h.Mux.Method("GET", "/metrics", promhttp.Handler())

	h.Mux.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.config.Server.CORSOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/layout", h.GetLayout)
		r.Get("/summary", h.GetSummary)
		r.Get("/figures/{graphID}", h.GetFigure)
		r.Get("/callbacks", h.GetCallbacks)
		r.With(h.control).Get("/callbacks/{controlID}", h.RunCallback)
	})
}
