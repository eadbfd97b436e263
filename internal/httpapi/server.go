// Package httpapi exposes the compliance record keeper over REST.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mhaugsand/fueleu/internal/domain/banking"
	"github.com/mhaugsand/fueleu/internal/domain/pooling"
	"github.com/mhaugsand/fueleu/internal/domain/route"
	"github.com/mhaugsand/fueleu/internal/metrics"
	"github.com/rs/zerolog"
)

// Services bundles the domain services the API serves.
type Services struct {
	Routes  *route.Service
	Banking *banking.Service
	Pooling *pooling.Service
}

// Server dispatches REST requests to the domain services.
type Server struct {
	services Services
	logger   zerolog.Logger
}

// NewRouter builds the chi router with logging and metrics middleware.
// Passing a nil metrics disables instrumentation and the /metrics endpoint.
func NewRouter(services Services, logger zerolog.Logger, m *metrics.Metrics) *chi.Mux {
	srv := &Server{services: services, logger: logger}

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	if m != nil {
		r.Use(instrument(m))
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/health", srv.handleHealth)

	r.Route("/api/routes", func(r chi.Router) {
		r.Get("/", srv.handleListRoutes)
		r.Post("/", srv.handleCreateRoute)
		r.Get("/compare", srv.handleCompareRoutes)
		r.Get("/{id}", srv.handleGetRoute)
		r.Put("/{id}", srv.handleUpdateRoute)
		r.Delete("/{id}", srv.handleDeleteRoute)
	})

	r.Route("/api/banking-records", func(r chi.Router) {
		r.Get("/", srv.handleListBankingRecords)
		r.Post("/", srv.handleCreateBankingRecord)
		r.Get("/{id}", srv.handleGetBankingRecord)
		r.Put("/{id}", srv.handleUpdateBankingRecord)
		r.Delete("/{id}", srv.handleDeleteBankingRecord)
		r.Post("/{id}/bank", srv.handleBank)
		r.Post("/{id}/apply", srv.handleApply)
	})

	r.Route("/api/pools", func(r chi.Router) {
		r.Get("/", srv.handleListPools)
		r.Post("/", srv.handleCreatePool)
		r.Get("/{id}", srv.handleGetPool)
		r.Put("/{id}", srv.handleUpdatePool)
		r.Delete("/{id}", srv.handleDeletePool)
		r.Get("/{id}/summary", srv.handlePoolSummary)
	})

	r.Route("/api/pool-members", func(r chi.Router) {
		r.Get("/", srv.handleListMembers)
		r.Post("/", srv.handleCreateMember)
		r.Get("/{id}", srv.handleGetMember)
		r.Put("/{id}", srv.handleUpdateMember)
		r.Delete("/{id}", srv.handleDeleteMember)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
