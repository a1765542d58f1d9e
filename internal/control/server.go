package control

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/seezol/inputkit/event"
	"github.com/seezol/inputkit/internal/session"
	"github.com/seezol/inputkit/keycode"
)

// Server handles websocket control input.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	injector Injector
	pointer  *PointerState
	log      *zap.Logger
	conn     *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, injector Injector, moveInterval time.Duration, minDelta float64, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		session:  sess,
		injector: injector,
		pointer:  NewPointerState(moveInterval, minDelta),
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP authorizes, upgrades the connection, and processes control
// messages until the peer disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if !s.session.Authorize(token) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	s.log.Info("control connection open", zap.String("remote", r.RemoteAddr))

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			s.log.Info("control connection closed", zap.Error(err))
			return
		}
		if err := s.handleMessage(msg); err != nil {
			s.log.Warn("control message failed", zap.String("t", msg.T), zap.Error(err))
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message. Unknown message
// types are ignored so older clients stay compatible.
func (s *Server) handleMessage(msg Message) error {
	switch msg.T {
	case "down":
		actions := s.pointer.HandleDown(s.session.InputEnabled(), parseButton(msg.Button), msg.X, msg.Y)
		return s.applyActions(actions)
	case "move":
		actions := s.pointer.HandleMove(s.session.InputEnabled(), msg.X, msg.Y)
		return s.applyActions(actions)
	case "up":
		actions := s.pointer.HandleUp(s.session.InputEnabled(), msg.X, msg.Y)
		return s.applyActions(actions)
	case "key":
		code, ok := resolveKey(msg)
		if !ok {
			return nil
		}
		actions := ActionsForKey(s.session.InputEnabled(), code, msg.Down)
		return s.applyActions(actions)
	case "wheel":
		actions := ActionsForWheel(s.session.InputEnabled(), parseUnit(msg.Unit), msg.WheelY, msg.WheelX)
		return s.applyActions(actions)
	case "setTap":
		s.session.SetTap(parseTap(msg.Tap))
		return nil
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return nil
	default:
		return nil
	}
}

// resolveKey returns the virtual key a key message names. Clients may
// send either a native code or a Windows virtual-key code; a message
// naming neither is dropped rather than read as code zero.
func resolveKey(msg Message) (uint16, bool) {
	if msg.WinVK != 0 {
		return keycode.FromWindowsVK(msg.WinVK)
	}
	if msg.Key == nil {
		return 0, false
	}
	return *msg.Key, true
}

// parseButton maps a protocol button name; anything but "right" is the
// primary button.
func parseButton(name string) event.Button {
	if name == "right" {
		return event.ButtonRight
	}
	return event.ButtonLeft
}

// parseUnit maps a protocol unit name; the default is smooth pixel
// scrolling.
func parseUnit(name string) event.ScrollUnit {
	if name == "line" {
		return event.UnitLine
	}
	return event.UnitPixel
}

// parseTap maps a protocol tap name onto a posting location.
func parseTap(name string) event.Tap {
	switch name {
	case "session":
		return event.TapSession
	case "annotated":
		return event.TapAnnotatedSession
	default:
		return event.TapHID
	}
}

// applyActions executes actions using the injector.
func (s *Server) applyActions(actions []Action) error {
	for _, action := range actions {
		if err := s.applyAction(action); err != nil {
			return err
		}
	}
	return nil
}

// applyAction executes a single action.
func (s *Server) applyAction(action Action) error {
	switch action.Type {
	case ActMove:
		return s.injector.Move(action.X, action.Y)
	case ActDrag:
		return s.injector.Drag(action.Button, action.X, action.Y)
	case ActDown:
		return s.injector.ButtonDown(action.Button, action.X, action.Y)
	case ActUp:
		return s.injector.ButtonUp(action.Button, action.X, action.Y)
	case ActClick:
		return s.injector.Click(action.Button, action.X, action.Y)
	case ActKey:
		return s.injector.Key(action.Key, action.Down)
	case ActScroll:
		return s.injector.Scroll(action.Unit, action.Deltas...)
	default:
		return nil
	}
}
