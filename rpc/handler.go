// Package rpc exposes the subgame solver as a unary Connect/gRPC service.
package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/timpalpant/subgame"
)

// SolveProcedure is the fully-qualified name of the Solve RPC.
const SolveProcedure = "/solver.Solver/Solve"

// Handler serves Solve requests from a Solver.
type Handler struct {
	solver *subgame.Solver
}

func NewHandler(solver *subgame.Solver) *Handler {
	return &Handler{solver: solver}
}

// Solve never fails on domain input; malformed requests are normalized
// by the solver into a valid (possibly empty) strategy.
func (h *Handler) Solve(ctx context.Context, req *connect.Request[subgame.SolveRequest]) (*connect.Response[subgame.SolveResponse], error) {
	return connect.NewResponse(h.solver.Solve(ctx, req.Msg)), nil
}

// NewSolverHandler builds the HTTP handler for the Solve RPC and returns
// the path on which to mount it.
func NewSolverHandler(h *Handler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	return SolveProcedure, connect.NewUnaryHandler(SolveProcedure, h.Solve, opts...)
}
