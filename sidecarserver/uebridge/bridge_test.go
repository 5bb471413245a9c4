package uebridge

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand("move_actor", map[string]any{"actor_name": "Cube"})
	assert.Equal(t, "move_actor", cmd.Action)
	assert.True(t, strings.HasPrefix(cmd.RequestID, "move_actor_"))
	assert.Equal(t, "Cube", cmd.Payload["actor_name"])

	other := NewCommand("move_actor", nil)
	assert.NotNil(t, other.Payload)
	assert.NotEqual(t, cmd.RequestID, other.RequestID)
}

func TestManagerSessions(t *testing.T) {
	m := NewManager(testLogger())

	var sent []Command
	capture := SenderFunc(func(ctx context.Context, cmd Command) error {
		sent = append(sent, cmd)
		return nil
	})

	t.Run("no sessions", func(t *testing.T) {
		_, _, err := m.Session("")
		require.Error(t, err)
		var bridgeErr *Error
		require.ErrorAs(t, err, &bridgeErr)
		assert.Equal(t, "RuntimeError", bridgeErr.WireName())
	})

	t.Run("lookup by id", func(t *testing.T) {
		m.Register("editor-1", capture)

		s, id, err := m.Session("editor-1")
		require.NoError(t, err)
		assert.Equal(t, "editor-1", id)
		require.NoError(t, s.SendCommand(context.Background(), NewCommand("ping", nil)))
		require.Len(t, sent, 1)
		assert.Equal(t, "ping", sent[0].Action)
	})

	t.Run("empty id picks an active session", func(t *testing.T) {
		s, id, err := m.Session("")
		require.NoError(t, err)
		assert.Equal(t, "editor-1", id)
		assert.NotNil(t, s)
	})

	t.Run("unknown id fails even with active sessions", func(t *testing.T) {
		_, _, err := m.Session("editor-99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "editor-99")
	})

	t.Run("unregister", func(t *testing.T) {
		m.Register("editor-2", capture)
		assert.Equal(t, []string{"editor-1", "editor-2"}, m.Sessions())

		m.Unregister("editor-1")
		m.Unregister("editor-1") // idempotent
		assert.Equal(t, []string{"editor-2"}, m.Sessions())
	})
}

func TestWebSocketTransport(t *testing.T) {
	m := NewManager(testLogger())
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?session_id=editor-1"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Registration happens on the server goroutine after the handshake.
	require.Eventually(t, func() bool {
		return len(m.Sessions()) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"editor-1"}, m.Sessions())

	sender, id, err := m.Session("")
	require.NoError(t, err)
	assert.Equal(t, "editor-1", id)

	sent := NewCommand("get_selected_actors", nil)
	require.NoError(t, sender.SendCommand(ctx, sent))

	var received Command
	require.NoError(t, wsjson.Read(ctx, conn, &received))
	assert.Equal(t, sent.Action, received.Action)
	assert.Equal(t, sent.RequestID, received.RequestID)

	// Closing the connection tears the session down.
	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool {
		return len(m.Sessions()) == 0
	}, 5*time.Second, 10*time.Millisecond)
}
