// Package envelope builds the uniform JSON wrapper every sidecar tool
// returns: a success flag, the operation name, a timestamp, and either the
// operation payload or an error descriptor. It is a pure mapping from a
// result-or-error variant to the wire shape.
package envelope

import (
	"encoding/json"
	"errors"
	"time"
)

// WireNamer is implemented by errors that carry their own error_type name.
type WireNamer interface {
	WireName() string
}

// defaultErrorType is used for errors with no category of their own.
const defaultErrorType = "RuntimeError"

func timestamp() string {
	return time.Now().Format(time.RFC3339)
}

// Success serializes a success envelope for the given action. Payload must
// marshal to a JSON object; its fields are merged into the envelope.
func Success(action string, payload any) (string, error) {
	body := map[string]any{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return "", err
		}
	}
	body["success"] = true
	body["action"] = action
	body["timestamp"] = timestamp()

	out, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Failure serializes a failure envelope. The error_type comes from the
// error's WireName when it has one. Extra fields (an echoed action, a
// session id) merge into the envelope without overriding the core keys.
func Failure(err error, fields map[string]any) string {
	body := map[string]any{}
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = false
	body["error"] = err.Error()
	body["error_type"] = ErrorType(err)
	body["timestamp"] = timestamp()

	out, marshalErr := json.MarshalIndent(body, "", "  ")
	if marshalErr != nil {
		// fields was unserializable; the core envelope never is
		out, _ = json.MarshalIndent(map[string]any{
			"success":    false,
			"error":      err.Error(),
			"error_type": ErrorType(err),
			"timestamp":  timestamp(),
		}, "", "  ")
	}
	return string(out)
}

// ErrorType returns the error_type string for an error.
func ErrorType(err error) string {
	var wn WireNamer
	if errors.As(err, &wn) {
		return wn.WireName()
	}
	return defaultErrorType
}
