// Package skills discovers skill packages on disk. A skill is a directory
// under the library root containing a SKILL.md whose optional YAML
// frontmatter names and describes it; the remainder of the file is the
// instruction text handed to the agent.
package skills

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSkillNotFound reports a skill name with no SKILL.md behind it.
var ErrSkillNotFound = errors.New("skill not found")

// ErrInvalidSkillName reports a name that is empty or tries to leave the
// library directory.
var ErrInvalidSkillName = errors.New("invalid skill name")

const manifestName = "SKILL.md"

// Skill is one discovered skill package.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Library reads skills from a single directory.
type Library struct {
	dir    string
	logger *slog.Logger
}

// NewLibrary creates a library rooted at dir. An empty or missing directory
// yields an empty skill list, not an error.
func NewLibrary(dir string, logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{dir: dir, logger: logger}
}

// List returns all discoverable skills sorted by name.
func (l *Library) List() ([]Skill, error) {
	skills := []Skill{}
	if l.dir == "" {
		return skills, nil
	}

	entries, err := os.ReadDir(l.dir)
	if os.IsNotExist(err) {
		return skills, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read skill library %s: %w", l.dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest := filepath.Join(l.dir, entry.Name(), manifestName)
		raw, err := os.ReadFile(manifest)
		if err != nil {
			continue
		}

		meta, _ := splitFrontmatter(raw)
		skill := Skill{
			Name:        entry.Name(),
			Description: meta.Description,
			Path:        manifest,
		}
		if meta.Name != "" {
			skill.Name = meta.Name
		}
		skills = append(skills, skill)
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Load returns the instruction body for one skill by directory name.
func (l *Library) Load(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSkillName, name)
	}

	raw, err := os.ReadFile(filepath.Join(l.dir, name, manifestName))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrSkillNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("cannot load skill %s: %w", name, err)
	}

	_, body := splitFrontmatter(raw)
	return body, nil
}

type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

var frontmatterFence = []byte("---\n")

// splitFrontmatter separates an optional leading YAML frontmatter block from
// the instruction body. Malformed frontmatter is ignored and the whole file
// becomes the body.
func splitFrontmatter(raw []byte) (frontmatter, string) {
	var meta frontmatter
	if !bytes.HasPrefix(raw, frontmatterFence) {
		return meta, string(raw)
	}

	rest := raw[len(frontmatterFence):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return meta, string(raw)
	}

	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return frontmatter{}, string(raw)
	}
	body := rest[end+len("\n---"):]
	return meta, strings.TrimPrefix(strings.TrimPrefix(string(body), "\n"), "\n")
}
