// Package server serves snapshots over HTTP and a websocket stream.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/litescript/ls-sofa/internal/astro"
	"github.com/litescript/ls-sofa/internal/ephem"
	"github.com/litescript/ls-sofa/internal/logging"
	"github.com/litescript/ls-sofa/internal/metrics"
	"github.com/litescript/ls-sofa/internal/state"
)

// Config holds server settings.
type Config struct {
	Listen       string
	RateLimit    float64 // requests per second per client
	RateBurst    int
	PingInterval time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Listen:       "127.0.0.1:8080",
		RateLimit:    10,
		RateBurst:    20,
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Server exposes a state.Manager over HTTP.
type Server struct {
	cfg      Config
	state    *state.Manager
	catalog  astro.StarCatalog
	metrics  *metrics.Collector
	log      *logging.Logger
	limiter  *clientLimiter
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// New creates a Server. A nil logger discards output.
func New(cfg Config, mgr *state.Manager, cat astro.StarCatalog, m *metrics.Collector, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	if m == nil {
		m = metrics.NewCollector()
	}
	def := DefaultConfig()
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = def.PingInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	if cfg.RateLimit <= 0 || cfg.RateBurst <= 0 {
		cfg.RateLimit, cfg.RateBurst = def.RateLimit, def.RateBurst
	}
	s := &Server{
		cfg:     cfg,
		state:   mgr,
		catalog: cat,
		metrics: m,
		log:     log,
		limiter: newClientLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.Handler())
	s.mux.Handle("GET /api/snapshot", s.limited("/api/snapshot", s.handleSnapshot))
	s.mux.Handle("GET /api/observe", s.limited("/api/observe", s.handleObserve))
	s.mux.Handle("GET /api/events", s.limited("/api/events", s.handleEvents))
	s.mux.Handle("GET /api/history", s.limited("/api/history", s.handleHistory))
	s.mux.Handle("GET /ws", s.limited("/ws", s.handleWS))
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.pruneLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server: listening on %s", s.cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) pruneLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.limiter.prune(now); n > 0 {
				s.log.Debug("server: pruned %d idle rate limiters", n)
			}
		}
	}
}

// limited wraps h with the per-client rate limit and request metrics.
func (s *Server) limited(path string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		if !s.limiter.allow(clientKey(r)) {
			s.metrics.RecordRateLimited(path)
			w.Header().Set("Retry-After", "1")
			writeError(rec, http.StatusTooManyRequests, "rate limit exceeded")
		} else {
			h(rec, r)
		}
		s.metrics.RecordRequest(path, rec.status, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !s.state.HasData() {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok\n"))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Current()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot yet")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleObserve returns one star or body. Stars outside the watch list
// are placed on demand from the catalog at the snapshot's instant.
func (s *Server) handleObserve(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Current()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot yet")
		return
	}

	if name := r.URL.Query().Get("body"); name != "" {
		b, ok := ephem.ParseBody(name)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown body "+strconv.Quote(name))
			return
		}
		view, ok := snap.Body(b)
		if !ok {
			writeError(w, http.StatusNotFound, b.String()+" not in snapshot")
			return
		}
		writeJSON(w, http.StatusOK, view)
		return
	}

	name := r.URL.Query().Get("star")
	if name == "" {
		writeError(w, http.StatusBadRequest, "star or body parameter required")
		return
	}
	star, ok := s.catalog.Find(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown star "+strconv.Quote(name))
		return
	}
	if view, ok := snap.Star(star.Name); ok {
		writeJSON(w, http.StatusOK, view)
		return
	}

	obs, err := astro.NewObserver(snap.Site, snap.Weather, snap.Earth, snap.Time)
	if err != nil {
		s.log.Warn("server: observe %s: %v", star.Name, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	pos := obs.Observe(star)
	writeJSON(w, http.StatusOK, state.StarView{
		Position: pos,
		Galactic: astro.Galactic(star.RAdeg, star.DecDeg),
		Tier:     astro.GetElevationTier(pos.ElDeg),
	})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	n := 20
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		n = parsed
	}
	events := s.state.RecentEvents(n)
	if events == nil {
		events = []state.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("target")
	if target == "" {
		writeError(w, http.StatusBadRequest, "target parameter required")
		return
	}
	hist := s.state.History(target)
	if hist == nil {
		writeError(w, http.StatusNotFound, "no history for "+strconv.Quote(target))
		return
	}
	writeJSON(w, http.StatusOK, hist)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusRecorder captures the response code. It passes hijacking
// through for the websocket upgrade.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("server: response does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
