package api

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/venuelabs/matching-venue/matching"
	"github.com/venuelabs/matching-venue/risk"
)

// Server exposes the venue over HTTP: order entry, book and position
// queries, health/metrics and a websocket trade stream.
type Server struct {
	log    *zap.Logger
	engine *matching.Engine
	risk   *risk.Manager

	router   *mux.Router
	http     *http.Server
	upgrader websocket.Upgrader
	tradeHub *hub[matching.ExecutionEvent]

	symbols   map[string]matching.Symbol
	orderIDs  matching.Sequence
	startTime time.Time
}

// NewServer creates the HTTP server for the given engine and risk manager.
// Order ids are assigned from the sequence, one per accepted request.
func NewServer(
	addr string,
	engine *matching.Engine,
	riskManager *risk.Manager,
	symbols []matching.Symbol,
	orderIDs matching.Sequence,
	log *zap.Logger,
) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if orderIDs == nil {
		orderIDs = matching.NewSequence()
	}

	s := &Server{
		log:       log,
		engine:    engine,
		risk:      riskManager,
		router:    mux.NewRouter(),
		upgrader:  websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		tradeHub:  newHub[matching.ExecutionEvent](),
		symbols:   make(map[string]matching.Symbol, len(symbols)),
		orderIDs:  orderIDs,
		startTime: time.Now(),
	}
	for _, symbol := range symbols {
		s.symbols[symbol.Name()] = symbol
	}

	s.registerRoutes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(s.withRequestLog)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/orders", s.handleSubmitOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{symbol}/{order_id}", s.handleCancelOrder).Methods(http.MethodDelete)
	api.HandleFunc("/book/{symbol}", s.handleGetBook).Methods(http.MethodGet)
	api.HandleFunc("/positions/{account_id}/{symbol}", s.handleGetPosition).Methods(http.MethodGet)

	s.router.HandleFunc("/ws/trades", s.handleTradeStream).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
}

// Handler returns the HTTP handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// PublishTrade pushes an executed trade to all websocket subscribers.
func (s *Server) PublishTrade(trade matching.ExecutionEvent) {
	s.tradeHub.Broadcast(trade)
}

// Run serves HTTP until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.log.Info("http server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// withRequestLog tags every request with an id and logs its outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		s.log.Debug("http request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack keeps the websocket upgrade working through the logging wrapper.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
