package config

import (
	"fmt"
	"os"
	"strings"
)

// Output mode enum values.
const (
	ModeText  = "text"
	ModeJSON  = "json"
	ModeBadge = "badge"
)

type Config struct {
	Paths   Paths
	Output  Output
	Runtime Runtime
}

type Paths struct {
	// ConfigDir is the per-user assistant configuration directory
	// (see --config-dir). Empty means the collector default (~/.claude).
	ConfigDir string

	// ProjectDir is the project directory to audit (see --project).
	// Empty means the current working directory.
	ProjectDir string
}

type Output struct {
	// JSON selects the structured report document (see --json).
	JSON bool

	// Badge selects the badge descriptor output (see --badge).
	Badge bool
}

type Runtime struct {
	// Verbose enables collection diagnostics on stderr (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{}
}

// Validate normalizes paths and resolves the output mode. Output flags never
// make a run fail: if both --json and --badge are set, --json wins.
func (c *Config) Validate() error {
	c.Paths.ConfigDir = strings.TrimSpace(c.Paths.ConfigDir)
	c.Paths.ProjectDir = strings.TrimSpace(c.Paths.ProjectDir)

	if c.Paths.ProjectDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		c.Paths.ProjectDir = cwd
	}
	return nil
}

// Mode returns the selected output mode.
func (c *Config) Mode() string {
	switch {
	case c.Output.JSON:
		return ModeJSON
	case c.Output.Badge:
		return ModeBadge
	default:
		return ModeText
	}
}
