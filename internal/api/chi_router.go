// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/courtside/internal/middleware"
)

// Router wires handlers and middleware into a Chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router. A nil middleware factory falls back to
// DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(AccessLog())

	// Registered before any subrouter so they inherit JSON 404/405.
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// ========================
		// Health Endpoints
		// ========================
		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		// ========================
		// Dashboard Endpoints
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(middleware.Metrics)

			r.Get("/pages", router.handler.Pages)
			r.Get("/dashboard", router.handler.Dashboard)
			r.Get("/competitors", router.handler.Competitors)
			r.Get("/competitors/detail", router.handler.CompetitorDetail)
			r.Get("/countries", router.handler.Countries)
			r.Get("/countries/list", router.handler.CountryList)
			r.Get("/leaderboards", router.handler.Leaderboards)

			r.Get("/charts/countries.svg", router.handler.CountriesChart)
			r.Get("/charts/leaderboards/{board}.svg", router.handler.LeaderboardChart)
		})

		// ========================
		// Administration
		// ========================
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitAdmin())
			r.Use(middleware.Metrics)
			r.Post("/admin/cache/clear", router.handler.ClearCache)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
