// Package remote exposes the control buttons, counters, metrics and a motion
// intake over HTTP
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/orchead/detect"
	"github.com/lixenwraith/orchead/logger"
	"github.com/lixenwraith/orchead/metrics"
)

const shutdownTimeout = 5 * time.Second

// Stats is the GET /stats payload
type Stats struct {
	Kills    int64  `json:"kills"`
	Visitors int64  `json:"visitors"`
	Chaos    bool   `json:"chaos"`
	Muted    bool   `json:"muted"`
	Session  string `json:"session"`
}

// Controller is the running app as seen from the network
// Implementations hand work to the loop and must not block
type Controller interface {
	// Press queues a control press and reports whether name is a known control
	Press(name string) bool
	// Motion queues one accelerometer sample
	Motion(v detect.Vec3)
	Stats() Stats
}

// Server routes remote requests to a Controller
type Server struct {
	ctl      Controller
	log      *slog.Logger
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader
	router   chi.Router
}

// New builds the router; m may be nil to disable metrics
func New(ctl Controller, log *slog.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		ctl:     ctl,
		log:     log,
		metrics: m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	if m != nil {
		r.Use(metrics.RequestMiddleware(m))
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			m.Handler(func() {
				st := ctl.Stats()
				m.SetCounts(st.Kills, st.Visitors)
			}).ServeHTTP(w, r)
		})
	}
	r.Get("/stats", s.GetStats)
	r.Post("/buttons/{name}", s.PressButton)
	r.Get("/motion", s.Motion)
	s.router = r
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler { return s.router }

// Serve accepts connections on ln until ctx is cancelled, then drains
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("remote control listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("remote control stopped")
	return nil
}

// ListenAndServe listens on addr and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// GetStats handles GET /stats
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.ctl.Stats()); err != nil {
		s.log.Debug("encode stats", slog.String("error", err.Error()))
	}
}

// PressButton handles POST /buttons/{name}
func (s *Server) PressButton(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.ctl.Press(name) {
		s.log.Debug("unknown button", slog.String("button", name))
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if s.metrics != nil {
		s.metrics.IncButton(name, "remote")
	}
	w.WriteHeader(http.StatusAccepted)
}

// Motion handles GET /motion, a websocket carrying {"x","y","z"} samples
func (s *Server) Motion(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("motion upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()
	s.log.Info("motion client connected", "remote", r.RemoteAddr)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("motion read", slog.String("error", err.Error()))
			}
			s.log.Info("motion client disconnected", "remote", r.RemoteAddr)
			return
		}

		var v detect.Vec3
		if err := json.Unmarshal(payload, &v); err != nil {
			s.log.Debug("discarding malformed motion sample", slog.String("error", err.Error()))
			continue
		}
		s.ctl.Motion(v)
		if s.metrics != nil {
			s.metrics.IncMotion()
		}
	}
}
