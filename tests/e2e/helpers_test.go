//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/budgetms/budgetvote/internal/adapter/postgres"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/budgetitem"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/testhelper"
	voterepo "github.com/budgetms/budgetvote/internal/adapter/postgres/vote"
	"github.com/budgetms/budgetvote/internal/adapter/postgres/votingsession"
	"github.com/budgetms/budgetvote/internal/config"
	budgetsvc "github.com/budgetms/budgetvote/internal/service/budget"
	votingsvc "github.com/budgetms/budgetvote/internal/service/voting"
	"github.com/budgetms/budgetvote/internal/transport/middleware"
	"github.com/budgetms/budgetvote/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	sessionRepo := votingsession.New(pool)
	voteRepo := voterepo.New(pool)
	itemRepo := budgetitem.New(pool)

	votingCfg := config.VotingConfig{
		TokenLength:         8,
		StorageTimeout:      5 * time.Second,
		MaxVoters:           200,
		SubmitRatePerMinute: 1000, // high enough that E2E tests never hit it
	}
	voting := votingsvc.NewService(logger, sessionRepo, voteRepo, itemRepo, txm, votingCfg)
	budget := budgetsvc.NewService(logger, itemRepo)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Voting: rest.NewVotingHandler(voting, logger),
		Budget: rest.NewBudgetHandler(budget, logger),
		Health: rest.NewHealthHandler(pool, "e2e-test"),
		Base: middleware.Chain(
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
		),
		SubmitLimit: limiter.Limit(votingCfg.SubmitRatePerMinute),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// postJSON sends a POST with a JSON body and decodes the JSON response.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp)
}

// getJSON sends a GET and decodes the JSON response.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	if resp.ContentLength == 0 {
		return body
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
