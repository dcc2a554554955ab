package rpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	"github.com/pkg/errors"

	"github.com/timpalpant/subgame"
)

// Client calls a remote solver.
type Client struct {
	solve *connect.Client[subgame.SolveRequest, subgame.SolveResponse]
}

// NewClient returns a client for the solver served at baseURL,
// e.g. "http://127.0.0.1:50051".
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &Client{
		solve: connect.NewClient[subgame.SolveRequest, subgame.SolveResponse](
			httpClient, strings.TrimRight(baseURL, "/")+SolveProcedure, opts...),
	}
}

func (c *Client) Solve(ctx context.Context, req *subgame.SolveRequest) (*subgame.SolveResponse, error) {
	resp, err := c.solve.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, errors.Wrap(err, "solve")
	}
	return resp.Msg, nil
}
