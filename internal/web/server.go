package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/driver"
	"github.com/san-kum/pendulum/internal/pendulum"
	"github.com/san-kum/pendulum/internal/render"
)

const (
	DefaultAddr = ":5000"
	SocketPath  = "/ws"

	shutdownTimeout = 5 * time.Second
)

type Option func(*Server)

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

func WithScene(scene render.Scene) Option {
	return func(s *Server) { s.scene = scene }
}

// WithInterval overrides the tick period derived from the time step.
func WithInterval(d time.Duration) Option {
	return func(s *Server) { s.interval = d }
}

type Server struct {
	addr     string
	scene    render.Scene
	params   pendulum.Params
	interval time.Duration
	log      *zap.Logger
	upgrader websocket.Upgrader

	// baseCtx is cancelled on shutdown so that hijacked socket handlers,
	// which http.Server.Shutdown does not wait for, unmount their views.
	baseCtx    context.Context
	cancelBase context.CancelFunc
	wg         sync.WaitGroup
	sessions   atomic.Int64
}

func NewServer(addr string, opts ...Option) *Server {
	params := pendulum.DefaultParams()
	s := &Server{
		addr:     addr,
		scene:    render.DefaultScene(),
		params:   params,
		interval: driver.Interval(params.Dt),
		log:      zap.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.baseCtx, s.cancelBase = context.WithCancel(context.Background())
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc(SocketPath, s.handleSocket)
	return mux
}

// Sessions is the number of currently mounted views.
func (s *Server) Sessions() int { return int(s.sessions.Load()) }

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	page, err := renderPage(s.scene, pendulum.New(s.params).Position())
	if err != nil {
		s.log.Error("page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("upgrade", zap.Error(err))
		return
	}

	s.wg.Add(1)
	s.sessions.Add(1)
	defer func() {
		s.sessions.Add(-1)
		s.wg.Done()
	}()

	newSession(conn, s.scene, s.params, s.interval, s.log).serve(s.baseCtx)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully and
// waits for every view to unmount.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		s.cancelBase()
		s.wg.Wait()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.cancelBase()
	s.wg.Wait()
	s.log.Info("server stopped")
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
