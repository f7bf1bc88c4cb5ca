package server

import (
	"context"
	"net/http"
)

// httpServer abstracts net/http.Server for testability.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv *http.Server
}

func (n netHTTPServer) ListenAndServe() error {
	return n.srv.ListenAndServe()
}

func (n netHTTPServer) Shutdown(ctx context.Context) error {
	return n.srv.Shutdown(ctx)
}

func (n netHTTPServer) Addr() string {
	return n.srv.Addr
}

func (n netHTTPServer) Handler() http.Handler {
	return n.srv.Handler
}
