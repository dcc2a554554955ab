package rpc

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server serves a handler over HTTP/1.1 and cleartext HTTP/2, so that
// both Connect and gRPC clients can reach it without TLS.
type Server struct {
	httpServer *http.Server
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: h2c.NewHandler(handler, &http2.Server{}),
		},
	}
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	glog.Infof("Solver listening on %s", l.Addr())
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}

// ListenAndServe binds the configured address and serves on it.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.httpServer.Addr)
	}
	return s.Serve(l)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return errors.Wrap(s.httpServer.Shutdown(ctx), "shutdown")
}
