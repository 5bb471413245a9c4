package handler

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
	"github.com/askq-ai/askq-sidecar/sidecarserver/uebridge"
)

// sessionOrDefault is the session id echoed in envelopes when the caller
// left it empty.
func sessionOrDefault(id string) string {
	if id == "" {
		return "default"
	}
	return id
}

// objectArg extracts an optional object parameter as a map. A missing or
// non-object value yields an empty map, mirroring the editor protocol's
// tolerance for absent transform components.
func objectArg(request mcp.CallToolRequest, key string) map[string]any {
	args := request.GetArguments()
	if m, ok := args[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// sendEngineCommand resolves the session, builds the command, and performs
// the fire-and-forget send. It returns the command (for its request id) and
// the effective session id.
func (h *SidecarHandler) sendEngineCommand(
	ctx context.Context,
	sessionID, action string,
	payload map[string]any,
) (uebridge.Command, error) {
	sender, _, err := h.bridge.Session(sessionID)
	if err != nil {
		return uebridge.Command{}, err
	}
	cmd := uebridge.NewCommand(action, payload)
	if err := sender.SendCommand(ctx, cmd); err != nil {
		return uebridge.Command{}, err
	}
	return cmd, nil
}

// HandleMoveActor relays a move_actor command to the editor.
func (h *SidecarHandler) HandleMoveActor(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	failFields := map[string]any{
		"action":     "move_actor",
		"session_id": sessionOrDefault(sessionID),
	}

	actorName := request.GetString("actor_name", "")
	if actorName == "" {
		return h.fail(fsops.NewError(fsops.KindInvalidArgument, "Actor name is required"), failFields), nil
	}

	location := objectArg(request, "location")
	rotation := objectArg(request, "rotation")
	scale := objectArg(request, "scale")

	cmd, err := h.sendEngineCommand(ctx, sessionID, "move_actor", map[string]any{
		"actor_name": actorName,
		"location":   location,
		"rotation":   rotation,
		"scale":      scale,
	})
	if err != nil {
		return h.fail(err, failFields), nil
	}

	return h.ok("move_actor", map[string]any{
		"status":     "command_sent",
		"request_id": cmd.RequestID,
		"session_id": sessionOrDefault(sessionID),
		"actor_name": actorName,
		"location":   location,
		"rotation":   rotation,
		"scale":      scale,
		"message":    fmt.Sprintf("Move actor '%s' command sent to UE4", actorName),
	})
}

// HandleGetSelectedActors asks the editor for its current selection.
func (h *SidecarHandler) HandleGetSelectedActors(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	failFields := map[string]any{
		"action":     "get_selected_actors",
		"session_id": sessionOrDefault(sessionID),
	}

	cmd, err := h.sendEngineCommand(ctx, sessionID, "get_selected_actors", nil)
	if err != nil {
		return h.fail(err, failFields), nil
	}

	return h.ok("get_selected_actors", map[string]any{
		"status":     "command_sent",
		"request_id": cmd.RequestID,
		"session_id": sessionOrDefault(sessionID),
		"message":    "Get selected actors command sent to UE4 (await UE4 response)",
	})
}

// HandleExecuteUE4Command relays an arbitrary named command to the editor.
func (h *SidecarHandler) HandleExecuteUE4Command(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	sessionID := request.GetString("session_id", "")
	failFields := map[string]any{
		"action":     "execute_ue4_command",
		"session_id": sessionOrDefault(sessionID),
	}

	commandName := request.GetString("command_name", "")
	if commandName == "" {
		return h.fail(fsops.NewError(fsops.KindInvalidArgument, "Command name is required"), failFields), nil
	}
	parameters := objectArg(request, "parameters")

	cmd, err := h.sendEngineCommand(ctx, sessionID, commandName, parameters)
	if err != nil {
		return h.fail(err, failFields), nil
	}

	return h.ok("execute_ue4_command", map[string]any{
		"status":       "command_sent",
		"request_id":   cmd.RequestID,
		"session_id":   sessionOrDefault(sessionID),
		"command_name": commandName,
		"parameters":   parameters,
		"message":      fmt.Sprintf("Command '%s' sent to UE4", commandName),
	})
}

// The four tools below are intercept placeholders: the sidecar's relay loop
// pauses execution, forwards the request to the editor or the human, and
// substitutes the real answer. The handlers only document that contract.

// HandleAskUE4User returns the awaiting-input placeholder envelope.
func (h *SidecarHandler) HandleAskUE4User(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return nil, err
	}
	return h.ok("ask_ue4_user", map[string]any{
		"status":   "awaiting_user_input",
		"question": question,
		"message":  "This tool call will be intercepted by the relay loop. The sidecar will ask the user and return the answer to the AI.",
	})
}

// HandleGenerateUAssetPython returns the awaiting-execution placeholder.
func (h *SidecarHandler) HandleGenerateUAssetPython(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	script, err := request.RequireString("script_content")
	if err != nil {
		return nil, err
	}
	return h.ok("generate_uasset_python", map[string]any{
		"status":        "awaiting_ue4_execution",
		"script_length": len(script),
		"message":       "This tool call will be intercepted by the relay loop. The sidecar will send the script to UE4 and return the execution result to the AI.",
	})
}

// HandleReadLocalCode returns the awaiting-local-execution placeholder.
func (h *SidecarHandler) HandleReadLocalCode(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	filePath, err := request.RequireString("file_path")
	if err != nil {
		return nil, err
	}
	return h.ok("read_local_code", map[string]any{
		"status":    "awaiting_local_execution",
		"file_path": filePath,
		"message":   "This tool call will be intercepted by the relay loop. The sidecar will read the file locally and return its contents to the AI.",
	})
}

// HandleInspectBlueprint returns the awaiting-execution placeholder.
func (h *SidecarHandler) HandleInspectBlueprint(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	assetPath, err := request.RequireString("asset_path")
	if err != nil {
		return nil, err
	}
	return h.ok("inspect_blueprint", map[string]any{
		"status":     "awaiting_ue4_execution",
		"asset_path": assetPath,
		"message":    "This tool call will be intercepted by the relay loop. The sidecar will request blueprint info from UE4 and return the result to the AI.",
	})
}
