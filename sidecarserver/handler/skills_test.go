package handler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, skillsDir, name, manifest string) {
	t.Helper()
	dir := filepath.Join(skillsDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(manifest), 0644))
}

func TestHandleListAvailableSkills(t *testing.T) {
	h, _, skillsDir := newTestHandler(t)
	ctx := context.Background()

	t.Run("empty library", func(t *testing.T) {
		res, err := h.HandleListAvailableSkills(ctx, callRequest(nil))
		require.NoError(t, err)

		body := requireSuccess(t, res, "list_available_skills")
		assert.Equal(t, float64(0), body["total_skills"])
	})

	t.Run("lists discovered skills", func(t *testing.T) {
		writeSkill(t, skillsDir, "asset-naming", "---\ndescription: Naming rules\n---\n\nUse prefixes.\n")

		res, err := h.HandleListAvailableSkills(ctx, callRequest(nil))
		require.NoError(t, err)

		body := requireSuccess(t, res, "list_available_skills")
		assert.Equal(t, float64(1), body["total_skills"])

		list, ok := body["skills"].([]any)
		require.True(t, ok)
		skill, ok := list[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "asset-naming", skill["name"])
		assert.Equal(t, "Naming rules", skill["description"])
	})
}

func TestHandleLoadSkillInstructions(t *testing.T) {
	h, _, skillsDir := newTestHandler(t)
	ctx := context.Background()

	writeSkill(t, skillsDir, "asset-naming", "---\ndescription: Naming rules\n---\n\nUse prefixes.\n")

	t.Run("loads the instruction body", func(t *testing.T) {
		res, err := h.HandleLoadSkillInstructions(ctx, callRequest(map[string]any{
			"skill_name": "asset-naming",
		}))
		require.NoError(t, err)

		body := requireSuccess(t, res, "load_skill_instructions")
		assert.Equal(t, "asset-naming", body["skill_name"])
		assert.Equal(t, "Use prefixes.\n", body["instructions"])
	})

	t.Run("unknown skill", func(t *testing.T) {
		res, err := h.HandleLoadSkillInstructions(ctx, callRequest(map[string]any{
			"skill_name": "ghost",
		}))
		require.NoError(t, err)
		requireFailure(t, res, "FileNotFoundError")
	})

	t.Run("traversal in the skill name", func(t *testing.T) {
		res, err := h.HandleLoadSkillInstructions(ctx, callRequest(map[string]any{
			"skill_name": "../escape",
		}))
		require.NoError(t, err)
		requireFailure(t, res, "ValueError")
	})
}
