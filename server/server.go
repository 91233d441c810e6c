package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/aerovlm/config"
	"github.com/katalvlaran/aerovlm/store"
)

// Server is the HTTP front end of the solver.
type Server struct {
	cfg     *config.Service
	log     logrus.FieldLogger
	handler http.Handler
	opts    options
}

// New wires routes and middleware for cfg. repo stores sweeps.
func New(cfg *config.Service, repo store.Repository, opts ...Option) *Server {
	o := gatherOptions(opts...)
	s := &Server{cfg: cfg, log: o.logger, opts: o}

	h := &handlers{repo: repo, log: o.logger, maxWorkers: o.maxWorkers}
	auth := NewAuth([]byte(cfg.TokenKey), cfg.ClientID, cfg.SecretHash, o.tokenTTL)
	limiter := NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	r := mux.NewRouter()
	r.Use(accessLog(o.logger), limiter.LimitMiddleware)

	r.HandleFunc("/api/token", auth.TokenHandler).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware)
	api.HandleFunc("/solve", h.Solve).Methods(http.MethodPost)
	api.HandleFunc("/sweep", h.Sweep).Methods(http.MethodPost)
	api.HandleFunc("/sweeps", h.ListSweeps).Methods(http.MethodGet)
	api.HandleFunc("/sweeps/{id:[0-9]+}", h.GetSweep).Methods(http.MethodGet)
	api.HandleFunc("/sweeps/{id:[0-9]+}/xlsx", h.SweepXLSX).Methods(http.MethodGet)
	api.HandleFunc("/report/pdf", h.ReportPDF).Methods(http.MethodPost)

	ws := r.PathPrefix("/ws").Subrouter()
	ws.Use(auth.Middleware)
	ws.HandleFunc("/sweep", h.SweepWS(websocket.Upgrader{})).Methods(http.MethodGet)

	s.handler = r

	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.cfg.Addr).Info("server: listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.log.Info("server: shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
