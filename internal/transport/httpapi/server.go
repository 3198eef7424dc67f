// Package httpapi serves the payroll REST API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/internal/payroll/model"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Deps struct {
	Store     RecipientStore
	Payroll   PayrollTrigger
	Inspector NetworkInspector
	// Runs is optional; /api/runs is served only when set.
	Runs    RunHistory
	Metrics RequestMetrics
}

type Server struct {
	logger         *zap.Logger
	network        model.Network
	store          RecipientStore
	payroll        PayrollTrigger
	inspector      NetworkInspector
	runs           RunHistory
	metrics        RequestMetrics
	allowedOrigins []string
}

func NewServer(deps Deps, network model.Network, allowedOrigins []string, logger *zap.Logger) (*Server, error) {
	if deps.Store == nil {
		return nil, errors.New("http recipient store is required")
	}
	if deps.Payroll == nil {
		return nil, errors.New("http payroll trigger is required")
	}
	if deps.Inspector == nil {
		return nil, errors.New("http network inspector is required")
	}
	if deps.Metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{
		logger:         logger,
		network:        network,
		store:          deps.Store,
		payroll:        deps.Payroll,
		inspector:      deps.Inspector,
		runs:           deps.Runs,
		metrics:        deps.Metrics,
		allowedOrigins: allowedOrigins,
	}, nil
}

// Handler returns the routed, CORS-enabled and instrumented API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/recipients", s.handleListRecipients)
	mux.HandleFunc("POST /api/recipients", s.handleCreateRecipient)
	mux.HandleFunc("PUT /api/recipients/{id}", s.handleUpdateRecipient)
	mux.HandleFunc("DELETE /api/recipients/{id}", s.handleDeleteRecipient)
	mux.HandleFunc("POST /api/run-payroll", s.handleRunPayroll)
	mux.HandleFunc("GET /api/transactions", s.handleTransactions)
	if s.runs != nil {
		mux.HandleFunc("GET /api/runs", s.handleRuns)
	}
	mux.HandleFunc("GET /api/network-info", s.handleNetworkInfo)
	mux.HandleFunc("POST /api/convert-address", s.handleConvertAddress)
	mux.HandleFunc("GET /api/address/{address}", s.handleAddress)
	mux.HandleFunc("GET /api/transaction/{hash}", s.handleTransaction)
	mux.Handle("GET /metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.instrument(mux))
}

// ListenAndServe serves until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		// run-payroll blocks for a whole run
		WriteTimeout:   6 * time.Minute,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.metrics.ObserveRequest(r.Pattern, rec.status, start)
		s.logger.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:         "ok",
		Network:        string(s.network),
		PayrollRunning: s.payroll.Running(),
	})
}

type healthResponse struct {
	Status         string `json:"status"`
	Network        string `json:"network"`
	PayrollRunning bool   `json:"payroll_running"`
}
