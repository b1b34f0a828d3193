package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/pledger/internal/auth"
	analyticsHandler "github.com/MrJamesThe3rd/pledger/internal/http/analytics"
	initiativeHandler "github.com/MrJamesThe3rd/pledger/internal/http/initiative"
	pledgeHandler "github.com/MrJamesThe3rd/pledger/internal/http/pledge"
)

type Options struct {
	Timeout     time.Duration
	CORSOrigins []string
}

func New(
	opts Options,
	verifier *auth.Verifier,
	initiativesV1 *initiativeHandler.Handler,
	pledgesV1 *pledgeHandler.Handler,
	analyticsV1 *analyticsHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/initiatives", func(r chi.Router) {
			initiativesV1.PublicRoutes(r)

			r.Route("/{id}/pledges", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				pledgesV1.Routes(verifier.Middleware)(r)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(verifier.Middleware)
			r.Use(auth.RequireRole(auth.RoleAdmin, auth.RoleStaff))

			r.Route("/initiatives", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				initiativesV1.AdminRoutes(r)
			})

			r.Route("/pledges/analytics", analyticsV1.Routes)
		})
	})

	return router
}
