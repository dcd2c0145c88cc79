// Package api exposes the core services over JSON HTTP. It owns routing,
// identity resolution, and the mapping from fault kinds to status codes;
// no business rules live here.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/housemate-app/housemate/internal/auth"
	"github.com/housemate-app/housemate/internal/chores"
	"github.com/housemate-app/housemate/internal/household"
	"github.com/housemate-app/housemate/internal/ledger"
	"github.com/housemate-app/housemate/internal/storage"
)

// Server wires the HTTP surface to the core services.
type Server struct {
	store         storage.Store
	authenticator auth.Authenticator
	jwt           *auth.JWTManager
	households    *household.Service
	expenses      *ledger.Service
	chores        *chores.Service
}

// New creates a Server over the given collaborators.
func New(store storage.Store, authenticator auth.Authenticator, jwt *auth.JWTManager,
	households *household.Service, expenses *ledger.Service, choreSvc *chores.Service) *Server {
	return &Server{
		store:         store,
		authenticator: authenticator,
		jwt:           jwt,
		households:    households,
		expenses:      expenses,
		chores:        choreSvc,
	}
}

// Handler returns the fully wired HTTP handler, including middleware and
// the Prometheus metrics endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("POST /api/households", s.requireAuth(s.handleCreateHousehold))
	mux.HandleFunc("GET /api/households/mine", s.requireAuth(s.handleMyHousehold))
	mux.HandleFunc("POST /api/households/join/{code}", s.requireAuth(s.handleJoinHousehold))
	mux.HandleFunc("DELETE /api/households/{id}/leave", s.requireAuth(s.handleLeaveHousehold))

	mux.HandleFunc("POST /api/expenses", s.requireAuth(s.handleCreateExpense))
	mux.HandleFunc("GET /api/expenses", s.requireAuth(s.handleListExpenses))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.requireAuth(s.handleDeleteExpense))
	mux.HandleFunc("GET /api/expenses/balances", s.requireAuth(s.handleBalances))

	mux.HandleFunc("POST /api/chores", s.requireAuth(s.handleCreateChore))
	mux.HandleFunc("GET /api/chores", s.requireAuth(s.handleListChores))
	mux.HandleFunc("PATCH /api/chores/{id}/toggle", s.requireAuth(s.handleToggleChore))
	mux.HandleFunc("DELETE /api/chores/{id}", s.requireAuth(s.handleDeleteChore))
	mux.HandleFunc("GET /api/chores/stats", s.requireAuth(s.handleHouseholdStats))
	mux.HandleFunc("GET /api/chores/my-stats", s.requireAuth(s.handleUserStats))

	mux.Handle("GET /metrics", promhttp.Handler())

	return instrument(cors(mux))
}
