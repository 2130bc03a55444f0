// Package router assembles the chi route tree for the service.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bloodlink/internal/http/handlers"
	mw "bloodlink/internal/http/middleware"
	"bloodlink/internal/http/middleware/ratelimit"
	"bloodlink/internal/logx"
)

// Deps lists everything the router mounts.
type Deps struct {
	Base       *handlers.Handlers
	Donors     *handlers.DonorHandler
	Recipients *handlers.RecipientHandler
	Matches    *handlers.MatchHandler
	Alerts     *handlers.AlertHandler
	Hospitals  *handlers.HospitalHandler
	RateLimit  *ratelimit.Middleware
	Logger     logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(mw.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/donors", func(r chi.Router) {
		r.Get("/", d.Donors.List)
		r.Post("/", d.Donors.Register)
		r.Put("/", d.Donors.Update)
		r.Get("/{id}", d.Donors.GetByID)
	})

	r.Route("/recipients", func(r chi.Router) {
		r.Get("/", d.Recipients.List)
		r.Post("/", d.Recipients.Register)
		r.Get("/{id}", d.Recipients.GetByID)
		r.Post("/{id}/status", d.Recipients.UpdateStatus)
		r.Get("/{id}/matches", d.Matches.FindForRecipient)
	})

	r.Route("/alerts", func(r chi.Router) {
		r.Get("/", d.Alerts.List)
		r.Post("/", d.Alerts.Send)
		r.Post("/{id}/deactivate", d.Alerts.Deactivate)
	})

	r.Route("/hospitals", func(r chi.Router) {
		r.Get("/", d.Hospitals.List)
		r.Get("/{id}", d.Hospitals.GetByID)
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
