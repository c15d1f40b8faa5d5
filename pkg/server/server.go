package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is a background job run alongside the listeners until the context
// is cancelled.
type Task func(ctx context.Context) error

// Options configures a Server.
type Options struct {
	// Address is the host:port of the TLS listener.
	Address string

	// TLSConfig is the listener TLS config; required.
	TLSConfig *tls.Config

	// Handler serves the main listener.
	Handler http.Handler

	// OpsAddress, when set, starts a plain HTTP listener serving OpsHandler.
	OpsAddress string
	OpsHandler http.Handler

	// Tasks run in the same group as the listeners.
	Tasks []Task

	Logger *slog.Logger
}

// Server owns the listeners and background tasks of the process.
type Server struct {
	opts   Options
	logger *slog.Logger

	httpServer *http.Server
	opsServer  *http.Server

	mu          sync.Mutex
	listener    net.Listener
	opsListener net.Listener
	closeOnce   sync.Once
}

// New creates a server. Nothing is bound until Listen or Run.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		opts:   opts,
		logger: logger.With("component", "server"),
		httpServer: &http.Server{
			Handler:   opts.Handler,
			TLSConfig: opts.TLSConfig,
			ErrorLog:  slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
	}

	if opts.OpsAddress != "" {
		s.opsServer = &http.Server{
			Handler:  opts.OpsHandler,
			ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		}
	}

	return s
}

// Listen binds the listeners. It is called by Run if needed; calling it
// first lets callers learn the bound addresses.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}

	if s.opts.TLSConfig == nil {
		return fmt.Errorf("TLS config is required")
	}

	ln, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Address, err)
	}

	if s.opsServer != nil {
		opsLn, err := net.Listen("tcp", s.opts.OpsAddress)
		if err != nil {
			ln.Close()
			return fmt.Errorf("failed to listen on ops address %s: %w", s.opts.OpsAddress, err)
		}
		s.opsListener = opsLn
	}

	s.listener = tls.NewListener(ln, s.opts.TLSConfig)
	return nil
}

// Addr returns the bound TLS listener address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// OpsAddr returns the bound ops listener address, or nil if there is none.
func (s *Server) OpsAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opsListener == nil {
		return nil
	}
	return s.opsListener.Addr()
}

// Run serves until ctx is cancelled or a listener or task fails, then closes
// everything. In-flight requests are not drained.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server running", "address", "https://"+s.Addr().String())
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	if s.opsServer != nil {
		g.Go(func() error {
			s.logger.Info("ops listener running", "address", s.opsListener.Addr().String())
			if err := s.opsServer.Serve(s.opsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server error: %w", err)
			}
			return nil
		})
	}

	for _, task := range s.opts.Tasks {
		task := task
		g.Go(func() error {
			return task(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")
		return s.Close()
	})

	return g.Wait()
}

// Close closes the listeners and all connections immediately.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if cerr := s.httpServer.Close(); cerr != nil {
			err = fmt.Errorf("server close error: %w", cerr)
		}
		if s.opsServer != nil {
			if cerr := s.opsServer.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("ops server close error: %w", cerr)
			}
		}

		// Listeners bound by Listen but never served.
		s.mu.Lock()
		for _, ln := range []net.Listener{s.listener, s.opsListener} {
			if ln != nil {
				_ = ln.Close()
			}
		}
		s.mu.Unlock()
	})
	return err
}
