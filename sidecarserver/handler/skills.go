package handler

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/askq-ai/askq-sidecar/sidecarserver/fsops"
	"github.com/askq-ai/askq-sidecar/sidecarserver/skills"
)

// HandleListAvailableSkills enumerates the skill library.
func (h *SidecarHandler) HandleListAvailableSkills(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	list, err := h.skills.List()
	if err != nil {
		return h.fail(err, nil), nil
	}
	return h.ok("list_available_skills", map[string]any{
		"skills":       list,
		"total_skills": len(list),
	})
}

// HandleLoadSkillInstructions loads one skill's instruction text.
func (h *SidecarHandler) HandleLoadSkillInstructions(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("skill_name")
	if err != nil {
		return nil, err
	}

	instructions, err := h.skills.Load(name)
	if err != nil {
		switch {
		case errors.Is(err, skills.ErrSkillNotFound):
			err = fsops.NewError(fsops.KindNotFound, "Skill not found: %s", name)
		case errors.Is(err, skills.ErrInvalidSkillName):
			err = fsops.NewError(fsops.KindInvalidArgument, "Invalid skill name: %s", name)
		}
		return h.fail(err, nil), nil
	}

	return h.ok("load_skill_instructions", map[string]any{
		"skill_name":   name,
		"instructions": instructions,
	})
}
