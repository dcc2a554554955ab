// Command subgame solves a single subgame root and prints the strategy.
//
// By default the solve runs in process; with -remote it is sent to a
// running subgamed.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/timpalpant/subgame"
	"github.com/timpalpant/subgame/internal/config"
	"github.com/timpalpant/subgame/rpc"
)

func main() {
	state := flag.String("state", `{"pot":12,"street":"preflop","blinds":{"big":2}}`, "Serialized game state")
	budget := flag.Int("budget", 200, "Time budget in milliseconds")
	stack := flag.Float64("stack", 100, "Effective stack in big blinds")
	actions := flag.String("actions", "pot:0.33,pot:0.75,all-in", "Comma-separated bet-size tokens")
	engineName := flag.String("engine", "", "Solver engine: heuristic or regret-matching (overrides SOLVER_ENGINE)")
	remote := flag.String("remote", "", "Base URL of a running solver, e.g. http://127.0.0.1:50051")
	timeout := flag.Duration("timeout", 5*time.Second, "Timeout for remote solves")
	flag.Parse()
	defer glog.Flush()

	req := &subgame.SolveRequest{
		StateFingerprint: "cli",
		GameStateJSON:    *state,
		BudgetMs:         *budget,
		EffectiveStackBB: *stack,
		ActionSet:        splitTokens(*actions),
	}

	resp, err := solve(req, *engineName, *remote, *timeout)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := render(resp); err != nil {
		glog.Errorf("Unable to render strategy: %v", err)
		os.Exit(1)
	}
}

func solve(req *subgame.SolveRequest, engineName, remote string, timeout time.Duration) (*subgame.SolveResponse, error) {
	if remote != "" {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		client := rpc.NewClient(http.DefaultClient, remote)
		return client.Solve(ctx, req)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if engineName != "" {
		cfg.Engine.Name = engineName
	}

	engine, err := cfg.Engine.Build()
	if err != nil {
		return nil, err
	}

	return subgame.NewSolver(engine).Solve(context.Background(), req), nil
}

func render(resp *subgame.SolveResponse) error {
	if len(resp.Actions) == 0 {
		pterm.Warning.Println("No legal actions: fold")
		return nil
	}

	data := pterm.TableData{{"Action", "Amount (bb)", "Frequency", "EV (bb)", "Regret"}}
	for _, a := range resp.Actions {
		data = append(data, []string{
			a.ActionType,
			fmt.Sprintf("%.2f", a.Amount),
			fmt.Sprintf("%.1f%%", 100*a.Frequency),
			fmt.Sprintf("%.3f", a.EV),
			fmt.Sprintf("%.4f", a.Regret),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	summary := fmt.Sprintf("source=%s iterations=%d exploitability=%.3f time=%dms",
		resp.Source, resp.Iterations, resp.Exploitability, resp.ComputeTimeMs)
	if resp.HoleBucket != "" {
		summary += " bucket=" + resp.HoleBucket
	}
	if resp.Truncated {
		pterm.Warning.Println(summary + " (budget exhausted early)")
	} else {
		pterm.Info.Println(summary)
	}

	return nil
}

func splitTokens(s string) []string {
	var tokens []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
