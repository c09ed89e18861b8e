package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
)

// StartHTTPServer serves in the background and returns the server so the
// caller can drain it on shutdown.
func StartHTTPServer(host string, port int, handler http.Handler) (*http.Server, error) {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		_ = srv.Serve(ln)
	}()
	return srv, nil
}

func Stop(ctx context.Context, srv *http.Server) error {
	return srv.Shutdown(ctx)
}
