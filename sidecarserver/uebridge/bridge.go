// Package uebridge relays structured commands from sidecar tools to a
// running UE4 editor. Commands are fire-and-forget JSON messages with a
// generated request identifier; the editor's responses flow back through the
// relay loop that owns the session, not through this package.
package uebridge

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Command is the wire shape of an engine command.
type Command struct {
	Action    string         `json:"action"`
	RequestID string         `json:"request_id"`
	Payload   map[string]any `json:"payload"`
}

// NewCommand builds a command with a fresh request identifier.
func NewCommand(action string, payload map[string]any) Command {
	if payload == nil {
		payload = map[string]any{}
	}
	return Command{
		Action:    action,
		RequestID: action + "_" + uuid.NewString(),
		Payload:   payload,
	}
}

// Sender is the single capability a bridge transport must provide.
type Sender interface {
	SendCommand(ctx context.Context, cmd Command) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, cmd Command) error

// SendCommand calls f.
func (f SenderFunc) SendCommand(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// Error is a bridge failure surfaced to the tool envelope.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// WireName returns the error_type string for the failure envelope.
func (e *Error) WireName() string { return "RuntimeError" }

// Manager tracks active engine sessions by id.
type Manager struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	sessions map[string]Sender
}

// NewManager creates an empty session manager.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:   logger,
		sessions: make(map[string]Sender),
	}
}

// Register adds or replaces the session with the given id.
func (m *Manager) Register(id string, s Sender) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
}

// Unregister removes a session. Unknown ids are a no-op.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Session returns the sender for id, or an arbitrary active session when id
// is empty, along with the effective session id.
func (m *Manager) Session(id string) (Sender, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id != "" {
		s, ok := m.sessions[id]
		if !ok {
			return nil, "", &Error{msg: fmt.Sprintf("No active UE4 connection found for session_id: %s", id)}
		}
		return s, id, nil
	}
	for sid, s := range m.sessions {
		return s, sid, nil
	}
	return nil, "", &Error{msg: "No active UE4 connection found"}
}

// Sessions returns the ids of all active sessions, sorted.
func (m *Manager) Sessions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
