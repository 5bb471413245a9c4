package sidecarserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
	"github.com/askq-ai/askq-sidecar/sidecarserver/handler"
	"github.com/askq-ai/askq-sidecar/sidecarserver/skills"
	"github.com/askq-ai/askq-sidecar/sidecarserver/uebridge"
)

// Version is stamped at build time.
var Version = "dev"

// Sidecar bundles the MCP server with the bridge manager so the caller can
// mount the editor connection endpoint next to the stdio transport.
type Sidecar struct {
	MCP    *server.MCPServer
	Bridge *uebridge.Manager
}

// New builds the sidecar from its configuration.
func New(cfg Config, logger *slog.Logger) (*Sidecar, error) {
	if logger == nil {
		logger = slog.Default()
	}

	accessor, err := fsops.NewAccessor(cfg.ProjectRoot, logger)
	if err != nil {
		return nil, err
	}
	bridge := uebridge.NewManager(logger)
	library := skills.NewLibrary(cfg.SkillsDir, logger)
	h := handler.NewSidecarHandler(accessor, bridge, library, logger)

	s := server.NewMCPServer(
		"askq-sidecar",
		Version,
		server.WithResourceCapabilities(true, true),
	)

	s.AddResource(mcp.NewResource(
		"file://",
		"Project Files",
		mcp.WithResourceDescription("Read-only access to files inside the project root"),
	), h.HandleReadResource)

	s.AddTool(mcp.NewTool(
		"list_directory",
		mcp.WithDescription("List the files and subdirectories of a directory inside the project root."),
		mcp.WithString("path",
			mcp.Description("Directory to list, relative to the project root (empty for the root itself)"),
		),
		mcp.WithArray("file_extensions",
			mcp.Description("Optional extension filters, e.g. ['.cpp', '.h', '.uasset']"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.HandleListDirectory)

	s.AddTool(mcp.NewTool(
		"read_file",
		mcp.WithDescription("Read the complete contents of a file. Text files return as text, binaries as base64."),
		mcp.WithString("path",
			mcp.Description("Path to the file to read"),
			mcp.Required(),
		),
	), h.HandleReadFile)

	s.AddTool(mcp.NewTool(
		"search_files",
		mcp.WithDescription("Search for files whose name contains a term, optionally recursing into subdirectories."),
		mcp.WithString("path",
			mcp.Description("Directory (or single file) to search under"),
		),
		mcp.WithString("search_term",
			mcp.Description("Substring to match against file names, case-insensitive"),
			mcp.Required(),
		),
		mcp.WithArray("file_extensions",
			mcp.Description("Optional extension filters"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Whether to search subdirectories (default: false)"),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum number of matches to return (default: 50)"),
		),
	), h.HandleSearchFiles)

	s.AddTool(mcp.NewTool(
		"get_file_info",
		mcp.WithDescription("Get detailed metadata about a file or directory, including a line count for text files."),
		mcp.WithString("path",
			mcp.Description("Path to the file or directory"),
			mcp.Required(),
		),
	), h.HandleGetFileInfo)

	s.AddTool(mcp.NewTool(
		"get_project_root",
		mcp.WithDescription("Return the project root directory all file access is confined to."),
	), h.HandleGetProjectRoot)

	s.AddTool(mcp.NewTool(
		"move_actor",
		mcp.WithDescription("Move, rotate, or scale an actor in the connected UE4 editor."),
		mcp.WithString("session_id",
			mcp.Description("UE4 session id (empty uses the first available connection)"),
		),
		mcp.WithString("actor_name",
			mcp.Description("Name of the actor to move"),
			mcp.Required(),
		),
		mcp.WithObject("location",
			mcp.Description("Target location {x, y, z}"),
		),
		mcp.WithObject("rotation",
			mcp.Description("Target rotation {pitch, yaw, roll}"),
		),
		mcp.WithObject("scale",
			mcp.Description("Target scale {x, y, z}"),
		),
	), h.HandleMoveActor)

	s.AddTool(mcp.NewTool(
		"get_selected_actors",
		mcp.WithDescription("Ask the connected UE4 editor for its currently selected actors."),
		mcp.WithString("session_id",
			mcp.Description("UE4 session id (empty uses the first available connection)"),
		),
	), h.HandleGetSelectedActors)

	s.AddTool(mcp.NewTool(
		"execute_ue4_command",
		mcp.WithDescription("Send a custom named command with parameters to the connected UE4 editor."),
		mcp.WithString("session_id",
			mcp.Description("UE4 session id (empty uses the first available connection)"),
		),
		mcp.WithString("command_name",
			mcp.Description("Name of the command to execute"),
			mcp.Required(),
		),
		mcp.WithObject("parameters",
			mcp.Description("Command parameters"),
		),
	), h.HandleExecuteUE4Command)

	s.AddTool(mcp.NewTool(
		"ask_ue4_user",
		mcp.WithDescription("Ask the UE4 user a question. Intercepted by the relay loop, which returns the user's answer."),
		mcp.WithString("question",
			mcp.Description("Question to ask the user"),
			mcp.Required(),
		),
	), h.HandleAskUE4User)

	s.AddTool(mcp.NewTool(
		"generate_uasset_python",
		mcp.WithDescription("Send a Python script to UE4 to create an asset. Intercepted by the relay loop."),
		mcp.WithString("script_content",
			mcp.Description("Python script to execute inside UE4"),
			mcp.Required(),
		),
	), h.HandleGenerateUAssetPython)

	s.AddTool(mcp.NewTool(
		"read_local_code",
		mcp.WithDescription("Read a local source file to understand logic or API definitions. Intercepted by the relay loop."),
		mcp.WithString("file_path",
			mcp.Description("Absolute or relative path of the source file"),
			mcp.Required(),
		),
	), h.HandleReadLocalCode)

	s.AddTool(mcp.NewTool(
		"inspect_blueprint",
		mcp.WithDescription("Inspect a UE4 blueprint asset. Intercepted by the relay loop."),
		mcp.WithString("asset_path",
			mcp.Description("UE4 asset path, e.g. /Game/Blueprints/BP_MyCharacter"),
			mcp.Required(),
		),
	), h.HandleInspectBlueprint)

	s.AddTool(mcp.NewTool(
		"list_available_skills",
		mcp.WithDescription("List the skills available in the skill library."),
	), h.HandleListAvailableSkills)

	s.AddTool(mcp.NewTool(
		"load_skill_instructions",
		mcp.WithDescription("Load the instruction text of one skill."),
		mcp.WithString("skill_name",
			mcp.Description("Name of the skill to load"),
			mcp.Required(),
		),
	), h.HandleLoadSkillInstructions)

	return &Sidecar{MCP: s, Bridge: bridge}, nil
}
