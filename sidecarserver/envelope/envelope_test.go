package envelope

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestSuccess(t *testing.T) {
	type payload struct {
		Path  string `json:"path"`
		Total int    `json:"total_files"`
	}

	raw, err := Success("list", payload{Path: "/project", Total: 3})
	require.NoError(t, err)

	body := decode(t, raw)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "list", body["action"])
	assert.Equal(t, "/project", body["path"])
	assert.Equal(t, float64(3), body["total_files"])

	ts, ok := body["timestamp"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestSuccessNilPayload(t *testing.T) {
	raw, err := Success("ping", nil)
	require.NoError(t, err)

	body := decode(t, raw)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ping", body["action"])
}

func TestFailure(t *testing.T) {
	t.Run("categorized error carries its wire name", func(t *testing.T) {
		err := fsops.NewError(fsops.KindNotFound, "File not found: ghost.txt")
		body := decode(t, Failure(err, nil))

		assert.Equal(t, false, body["success"])
		assert.Equal(t, "File not found: ghost.txt", body["error"])
		assert.Equal(t, "FileNotFoundError", body["error_type"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("plain errors default to RuntimeError", func(t *testing.T) {
		body := decode(t, Failure(errors.New("boom"), nil))
		assert.Equal(t, "RuntimeError", body["error_type"])
	})

	t.Run("extra fields merge without overriding the core keys", func(t *testing.T) {
		err := errors.New("no connection")
		body := decode(t, Failure(err, map[string]any{
			"action":     "move_actor",
			"session_id": "default",
			"success":    true, // must not survive
		}))

		assert.Equal(t, false, body["success"])
		assert.Equal(t, "move_actor", body["action"])
		assert.Equal(t, "default", body["session_id"])
	})
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "ValueError", ErrorType(fsops.NewError(fsops.KindInvalidArgument, "bad")))
	assert.Equal(t, "PermissionError", ErrorType(fsops.NewError(fsops.KindAccessDenied, "denied")))
	assert.Equal(t, "RuntimeError", ErrorType(errors.New("plain")))
}
