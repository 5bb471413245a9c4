package uebridge

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
)

// WSTransport sends commands over an established websocket connection.
type WSTransport struct {
	conn *websocket.Conn
}

// NewWSTransport wraps an accepted or dialed websocket connection.
func NewWSTransport(conn *websocket.Conn) *WSTransport {
	return &WSTransport{conn: conn}
}

// SendCommand writes the command as a single JSON message.
func (t *WSTransport) SendCommand(ctx context.Context, cmd Command) error {
	return wsjson.Write(ctx, t.conn, cmd)
}

// Handler returns an http.Handler that upgrades incoming editor connections
// and registers them as sessions for the lifetime of the connection. The
// editor identifies itself with a session_id query parameter; connections
// without one get a generated id.
func (m *Manager) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session_id")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			m.logger.Warn("engine websocket accept failed", "error", err)
			return
		}

		m.Register(sessionID, NewWSTransport(conn))
		m.logger.Info("engine session connected", "session_id", sessionID)
		defer func() {
			m.Unregister(sessionID)
			m.logger.Info("engine session disconnected", "session_id", sessionID)
		}()

		// Drain incoming frames until the editor hangs up. Responses are
		// consumed by the relay loop upstream, not interpreted here.
		ctx := r.Context()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				break
			}
		}
		conn.Close(websocket.StatusNormalClosure, "")
	})
}
