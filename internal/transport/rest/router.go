package rest

import (
	"net/http"

	"github.com/budgetms/budgetvote/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Voting      *VotingHandler
	Budget      *BudgetHandler
	Health      *HealthHandler
	Base        middleware.Middleware
	SubmitLimit middleware.Middleware
}

// NewRouter builds the HTTP route table. Base middleware wraps every route;
// SubmitLimit additionally wraps vote submission, the only write endpoint
// open to unauthenticated voters.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("POST /api/voting/sessions", deps.Voting.CreateSession)
	mux.HandleFunc("GET /api/voting/sessions/{token}", deps.Voting.GetSession)
	mux.Handle("POST /api/voting/sessions/{token}/votes",
		deps.SubmitLimit(http.HandlerFunc(deps.Voting.SubmitVote)))
	mux.HandleFunc("POST /api/voting/sessions/{token}/close", deps.Voting.CloseSession)
	mux.HandleFunc("GET /api/voting/sessions/{token}/results", deps.Voting.GetResults)

	mux.HandleFunc("POST /api/budget/items", deps.Budget.CreateItem)
	mux.HandleFunc("GET /api/budget/items", deps.Budget.ListItems)
	mux.HandleFunc("GET /api/budget/items/{id}", deps.Budget.GetItem)
	mux.HandleFunc("PUT /api/budget/items/{id}", deps.Budget.UpdateItem)
	mux.HandleFunc("DELETE /api/budget/items/{id}", deps.Budget.DeleteItem)
	mux.HandleFunc("GET /api/budget/statistics", deps.Budget.Statistics)
	mux.HandleFunc("GET /api/budget/dashboard", deps.Budget.Dashboard)

	return deps.Base(mux)
}
