// Package live pushes recomputed simulation results to connected planning
// UIs. Every slider change arrives as an operations message; the session
// validates the plan, reruns the engine and pushes the fresh trajectory
// and score back. Sessions are independent and nothing outlives a socket.
package live

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/forestlab/rilsim/internal/engine"
	"github.com/forestlab/rilsim/internal/simulation"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Message is the wire format in both directions. Clients send
// type "operations"; the server answers with "result", "invalid" or
// "error".
type Message struct {
	Type       string                   `json:"type"`
	Profile    string                   `json:"profile,omitempty"`
	Operations []engine.Operation       `json:"operations,omitempty"`
	Run        *engine.RunResult        `json:"run,omitempty"`
	Errors     []engine.ValidationError `json:"errors,omitempty"`
	Message    string                   `json:"message,omitempty"`
}

// Session is one connected planning UI.
type Session struct {
	ID   string
	conn *websocket.Conn
	send chan Message
}

// Manager upgrades connections and runs their read/write pumps.
type Manager struct {
	service  *simulation.Service
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a new live session manager.
func NewManager(service *simulation.Service, logger *zap.Logger) *Manager {
	return &Manager{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		sessions: make(map[string]*Session),
	}
}

// HandleConnection upgrades an HTTP request to a live session.
func (m *Manager) HandleConnection(w http.ResponseWriter, r *http.Request) (*Session, error) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade connection: %w", err)
	}

	session := &Session{
		ID:   uuid.New().String(),
		conn: conn,
		send: make(chan Message, sendBuffer),
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Info("live session opened", zap.String("session", session.ID))

	go m.readPump(session)
	go m.writePump(session)

	return session, nil
}

// readPump reads operations updates from the client and recomputes.
func (m *Manager) readPump(session *Session) {
	defer func() {
		m.remove(session)
		session.conn.Close()
	}()

	session.conn.SetReadLimit(maxMessageSize)
	session.conn.SetReadDeadline(time.Now().Add(pongWait))
	session.conn.SetPongHandler(func(string) error {
		session.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := session.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				m.logger.Warn("live session read error",
					zap.String("session", session.ID), zap.Error(err))
			}
			return
		}
		m.handleMessage(session, &msg)
	}
}

// writePump writes queued messages and keepalive pings.
func (m *Manager) writePump(session *Session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		session.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-session.send:
			session.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				session.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := session.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			session.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := session.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage recomputes a session's run from an incoming message. The
// session holds no plan state: each update carries the complete plan and
// produces a complete result.
func (m *Manager) handleMessage(session *Session, msg *Message) {
	if msg.Type != "operations" {
		m.push(session, Message{
			Type:    "error",
			Message: fmt.Sprintf("unknown message type: %s", msg.Type),
		})
		return
	}

	req := &simulation.SimulateRequest{
		Profile:    msg.Profile,
		Operations: msg.Operations,
	}

	results, err := m.service.Validate(req)
	if err != nil {
		m.push(session, Message{Type: "error", Message: err.Error()})
		return
	}
	if !results.IsValid {
		m.push(session, Message{Type: "invalid", Errors: results.Errors})
		return
	}

	run, err := m.service.Run(req)
	if err != nil {
		m.push(session, Message{Type: "error", Message: err.Error()})
		return
	}

	m.push(session, Message{Type: "result", Run: run})
}

// push queues a message for a session, dropping the session if its buffer
// is stuck.
func (m *Manager) push(session *Session, msg Message) {
	select {
	case session.send <- msg:
	default:
		m.logger.Warn("live session send buffer full, closing",
			zap.String("session", session.ID))
		m.remove(session)
		session.conn.Close()
	}
}

func (m *Manager) remove(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[session.ID]; ok {
		delete(m.sessions, session.ID)
		close(session.send)
		m.logger.Info("live session closed", zap.String("session", session.ID))
	}
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close disconnects every session. It only closes the connections; each
// session's read pump owns its send channel and tears it down via remove,
// so a recompute racing the shutdown can never send on a closed channel.
func (m *Manager) Close() {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	m.mu.RUnlock()

	for _, session := range sessions {
		session.conn.Close()
	}
}
