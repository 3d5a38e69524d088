package http_server

import (
	"context"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 30 * time.Second
)

// Server wraps net/http with an error channel so the caller can select
// between an interrupt signal and a listener failure.
type Server struct {
	server *http.Server
	notify chan error
}

func New(handler http.Handler, address string) *Server {
	s := &Server{
		server: &http.Server{
			Handler:           handler,
			Addr:              address,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		notify: make(chan error, 1),
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		s.notify <- s.server.ListenAndServe()
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
