package daemon

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DavideDaniel/research/internal/foundation/errors"
	"github.com/DavideDaniel/research/internal/logfields"
	"github.com/DavideDaniel/research/internal/metrics"
)

// HTTPServer serves the output directory, /healthz and /metrics.
type HTTPServer struct {
	server       *http.Server
	listener     net.Listener
	status       *buildStatus
	errorAdapter *errors.HTTPErrorAdapter
	started      time.Time
}

// NewHTTPServer binds addr immediately so port conflicts surface before the
// first build. reg may be nil, in which case /metrics is not mounted.
func NewHTTPServer(addr, outputDir string, status *buildStatus, reg *prometheus.Registry) (*HTTPServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRuntime, "failed to bind HTTP listener").
			WithContext("addr", addr).
			UserAction().Build()
	}

	s := &HTTPServer{
		listener:     ln,
		status:       status,
		errorAdapter: errors.NewHTTPErrorAdapter(slog.Default()),
		started:      time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if reg != nil {
		mux.Handle("GET /metrics", metrics.HTTPHandler(reg))
	}
	mux.Handle("/", http.FileServer(http.Dir(outputDir)))

	s.server = &http.Server{
		Handler:           chain(slog.Default(), s.errorAdapter, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Addr is the bound listen address.
func (s *HTTPServer) Addr() string { return s.listener.Addr().String() }

// Start serves in the background.
func (s *HTTPServer) Start() {
	go func() {
		if err := s.server.Serve(s.listener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", logfields.Addr(s.Addr()), logfields.Error(err))
		}
	}()
	slog.Info("HTTP server listening", logfields.Addr(s.Addr()))
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
