// Package api assembles the HTTP router, wiring handlers, authentication
// and observability middleware.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/splitsphere/backend/internal/api/handler"
	"github.com/splitsphere/backend/internal/auth"
	"github.com/splitsphere/backend/internal/metrics"
	"github.com/splitsphere/backend/internal/middleware"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Auth        *handler.AuthHandler
	Group       *handler.GroupHandler
	Expense     *handler.ExpenseHandler
	Settlement  *handler.SettlementHandler
	Balance     *handler.BalanceHandler
	Transaction *handler.TransactionHandler
}

// NewRouter builds the HTTP router. Auth endpoints, the health check and
// the metrics endpoint are public; everything under /api besides auth
// requires a bearer token.
func NewRouter(h Handlers, jwtManager *auth.JWTManager, httpMetrics *metrics.HTTPMetrics, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Metrics(httpMetrics))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))

			r.Post("/groups", h.Group.Create)
			r.Get("/groups", h.Group.List)
			r.Get("/groups/{groupID}", h.Group.Get)
			r.Post("/groups/{groupID}/join", h.Group.Join)
			r.Post("/groups/{groupID}/close", h.Group.Close)

			r.Post("/expenses", h.Expense.Create)
			r.Get("/expenses/group/{groupID}", h.Expense.ListByGroup)

			r.Post("/settlements", h.Settlement.Create)
			r.Get("/settlements/group/{groupID}", h.Settlement.ListByGroup)

			r.Get("/balances/group/{groupID}", h.Balance.GetGroupBalances)
			r.Get("/transactions/group/{groupID}", h.Transaction.ListByGroup)
		})
	})

	return r
}
