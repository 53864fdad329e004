package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"arith-service/internal/config"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	log             *zap.SugaredLogger
}

func New(cfg config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             zap.S().With("module", "server"),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.httpServer.Addr)
	}
	return s.Serve(ctx, l)
}

// Serve serves on l until ctx is done, then shuts down gracefully, waiting
// at most the configured shutdown timeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Calculator listening on %s", l.Addr())
		errCh <- s.httpServer.Serve(l)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	s.log.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}
