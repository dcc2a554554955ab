package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/subgame"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(subgame.NewSolver(nil))))
	t.Cleanup(srv.Close)
	return srv
}

func referenceRequest() *subgame.SolveRequest {
	return &subgame.SolveRequest{
		StateFingerprint: "rpc-test",
		GameStateJSON:    `{"pot":12,"street":"preflop","blinds":{"big":2}}`,
		BudgetMs:         200,
		EffectiveStackBB: 120,
		ActionSet:        []string{"pot:0.33", "pot:0.75", "all-in"},
	}
}

func TestClientSolve(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.Client(), srv.URL)

	resp, err := client.Solve(context.Background(), referenceRequest())
	require.NoError(t, err)

	assert.Equal(t, subgame.Source, resp.Source)
	require.Len(t, resp.Actions, 3)
	assert.Equal(t, "pot-0.33", resp.Actions[0].ActionType)
	assert.Equal(t, "all-in", resp.Actions[2].ActionType)
	assert.InDelta(t, 120.0, resp.Actions[2].Amount, 1e-9)

	total := 0.0
	for _, a := range resp.Actions {
		total += a.Frequency
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestClientSolveNothingToSolve(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.Client(), srv.URL)

	req := referenceRequest()
	req.ActionSet = []string{"nonsense"}
	req.GameStateJSON = "not json"
	resp, err := client.Solve(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.Actions)
	assert.Zero(t, resp.Exploitability)
	assert.Equal(t, subgame.Source, resp.Source)
}

func TestPlainJSONPost(t *testing.T) {
	srv := newTestServer(t)

	body := `{"game_state_json":"{\"pot\":20,\"blinds\":{\"big\":2}}","budget_ms":100,"effective_stack_bb":150,"action_set":["pot:0.5","all-in"]}`
	httpResp, err := srv.Client().Post(srv.URL+SolveProcedure, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)

	var resp subgame.SolveResponse
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&resp))
	require.Len(t, resp.Actions, 2)
	assert.Equal(t, "pot-0.50", resp.Actions[0].ActionType)
	assert.InDelta(t, 5.0, resp.Actions[0].Amount, 1e-9)
	assert.Equal(t, 10, resp.Iterations)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	httpResp, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer httpResp.Body.Close()

	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
}
