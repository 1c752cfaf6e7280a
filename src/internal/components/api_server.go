package components

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/maksimkurb/internet-reloader/src/internal/errors"
	"github.com/maksimkurb/internet-reloader/src/internal/log"
)

// APIServer serves the HTTP API until its context is cancelled.
type APIServer struct {
	bindAddr        string
	handler         http.Handler
	shutdownTimeout time.Duration

	mu       sync.Mutex
	listener net.Listener
}

// NewAPIServer creates a new API server component
func NewAPIServer(bindAddr string, handler http.Handler) *APIServer {
	return &APIServer{
		bindAddr:        bindAddr,
		handler:         handler,
		shutdownTimeout: 10 * time.Second,
	}
}

// Name implements Component.
func (a *APIServer) Name() string {
	return "API server"
}

// Addr returns the address the server is listening on, or nil when it is not listening.
func (a *APIServer) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return nil
	}
	return a.listener.Addr()
}

// Run listens on the bind address and serves until ctx is cancelled.
func (a *APIServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.bindAddr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "failed to listen on "+a.bindAddr, err)
	}

	a.mu.Lock()
	a.listener = listener
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.listener = nil
		a.mu.Unlock()
	}()

	httpServer := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Infof("API server listening on http://%s", listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if err == http.ErrServerClosed {
			return nil
		}
		return err

	case <-ctx.Done():
		log.Infof("Stopping API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Error during API server shutdown: %v", err)
			_ = httpServer.Close()
		}
		<-serveErr
		log.Infof("API server stopped")
		return nil
	}
}
