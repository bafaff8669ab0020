package web

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/san-kum/pendulum/internal/driver"
	"github.com/san-kum/pendulum/internal/pendulum"
	"github.com/san-kum/pendulum/internal/physics"
	"github.com/san-kum/pendulum/internal/render"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
	readLimit = 1 << 10
)

const (
	MessageHello = "hello"
	MessageFrame = "frame"
)

// Message is what a view receives over the socket: one hello carrying the
// session ID and scene, then one frame per simulation step.
type Message struct {
	Type    string         `json:"type"`
	Session string         `json:"session,omitempty"`
	Scene   *render.Scene  `json:"scene,omitempty"`
	Step    int            `json:"step,omitempty"`
	Shapes  *render.Shapes `json:"shapes,omitempty"`
}

// session is one mounted view. Frames are written only from the driver
// goroutine; the read loop only watches for the peer going away.
type session struct {
	id         string
	conn       *websocket.Conn
	scene      render.Scene
	integrator *pendulum.Integrator
	driver     *driver.Driver
	log        *zap.Logger
}

func newSession(conn *websocket.Conn, scene render.Scene, params pendulum.Params, interval time.Duration, log *zap.Logger) *session {
	s := &session{
		id:         uuid.NewString(),
		conn:       conn,
		scene:      scene,
		integrator: pendulum.New(params),
	}
	s.log = log.With(zap.String("session", s.id))
	s.driver = driver.New(s.integrator, render.RendererFunc(s.render), interval, driver.WithLogger(s.log))
	return s
}

func (s *session) render(pos physics.BobPosition) error {
	shapes := s.scene.Shapes(pos)
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(Message{Type: MessageFrame, Step: s.integrator.Steps(), Shapes: &shapes})
}

// serve runs the view until the peer disconnects, the driver fails or ctx
// is done.
func (s *session) serve(ctx context.Context) {
	defer s.conn.Close()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(Message{Type: MessageHello, Session: s.id, Scene: &s.scene}); err != nil {
		s.log.Debug("hello failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := s.driver.Start(ctx); err != nil {
		s.log.Error("start driver", zap.Error(err))
		return
	}
	s.log.Info("view mounted")

	closed := make(chan struct{})
	go s.readLoop(closed)

	select {
	case <-ctx.Done():
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
	case <-closed:
	case <-s.driver.Done():
	}

	if err := s.driver.Stop(); err != nil {
		s.log.Debug("driver ended", zap.Error(err))
	}
	s.log.Info("view unmounted", zap.Int("steps", s.integrator.Steps()))
}

func (s *session) readLoop(closed chan<- struct{}) {
	defer close(closed)

	s.conn.SetReadLimit(readLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("read", zap.Error(err))
			}
			return
		}
		// Views send nothing meaningful; the pendulum takes no input.
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
