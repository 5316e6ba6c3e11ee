package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Server struct {
	address string
	handler http.Handler
	logger  Logger
}

// NewServer creates the health server serving the state of the
// last run on / and the Prometheus metrics on /metrics.
func NewServer(address string, state *State, metricsHandler http.Handler,
	logger Logger) *Server {
	return &Server{
		address: address,
		handler: newHandler(state, metricsHandler),
		logger:  logger,
	}
}

// Run serves until the context is canceled, and
// returns an error only if the server crashes.
func (s *Server) Run(ctx context.Context) (err error) {
	const readHeaderTimeout = time.Second
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		const shutdownGraceDuration = 2 * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceDuration)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error("failed shutting down: " + err.Error())
		}
	}()

	s.logger.Info("listening on " + s.address)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health server crashed: %w", err)
	}
	<-shutdownDone
	s.logger.Warn("shut down")
	return nil
}
