// Command subgamed serves the subgame solver over Connect and gRPC.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"

	"github.com/timpalpant/subgame"
	"github.com/timpalpant/subgame/internal/config"
	"github.com/timpalpant/subgame/rpc"
)

func main() {
	addr := flag.String("addr", "", "Address to listen on (overrides SOLVER_ADDR)")
	engineName := flag.String("engine", "", "Solver engine: heuristic or regret-matching (overrides SOLVER_ENGINE)")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load()
	if err != nil {
		glog.Fatalf("Invalid configuration: %v", err)
	}

	if *addr != "" {
		cfg.Addr = *addr
	}
	if *engineName != "" {
		cfg.Engine.Name = *engineName
	}

	engine, err := cfg.Engine.Build()
	if err != nil {
		glog.Fatal(err)
	}

	glog.Infof("Using %s engine", cfg.Engine.Name)
	handler := rpc.NewHandler(subgame.NewSolver(engine))
	srv := rpc.NewServer(cfg.Addr, rpc.NewRouter(handler))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			glog.Errorf("Server failed: %v", err)
			glog.Flush()
			os.Exit(1)
		}
	case sig := <-sigCh:
		glog.Infof("Received %v, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			glog.Warningf("Unclean shutdown: %v", err)
		}
	}
}
