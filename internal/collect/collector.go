// Package collect is the filesystem boundary of agentmedic. It reads hook
// settings, instruction files, and marker paths from the host and produces an
// inputs.Inputs snapshot. Collection never fails: unreadable or malformed
// files degrade to empty/absent values so a report is always produced.
package collect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"agentmedic/internal/inputs"
)

// Collector gathers raw configuration artifacts. It is the only component
// that knows about real paths; everything downstream works from the snapshot.
type Collector struct {
	// ConfigDir is the per-user assistant configuration directory
	// (default "~/.claude").
	ConfigDir string

	// ProjectDir is the project working directory being audited.
	ProjectDir string

	// Home overrides the user home directory (tests). Empty means
	// os.UserHomeDir.
	Home string

	// Verbose enables collection diagnostics on Log.
	Verbose bool

	// Log receives verbose diagnostics. Nil means os.Stderr.
	Log io.Writer
}

// New returns a Collector for the given config and project directories.
func New(configDir, projectDir string) *Collector {
	return &Collector{ConfigDir: configDir, ProjectDir: projectDir}
}

// DefaultConfigDir resolves the default per-user config directory. Falls back
// to a relative ".claude" when the home directory cannot be determined.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".claude"
	}
	return filepath.Join(home, ".claude")
}

// Collect produces the snapshot for one run. It never returns an error;
// partial information is preferred over aborting.
func (c *Collector) Collect() *inputs.Inputs {
	hooks := c.collectHooks()
	instructions := c.collectInstructions()
	markers := c.collectMarkers()
	return inputs.New(hooks, instructions, markers)
}

// settingsPaths lists hook-settings documents in precedence order: the
// per-user settings first, then the project-level overrides.
func (c *Collector) settingsPaths() []string {
	return []string{
		filepath.Join(c.ConfigDir, "settings.json"),
		filepath.Join(c.ProjectDir, ".claude", "settings.json"),
	}
}

func (c *Collector) collectHooks() []inputs.HookEntry {
	var entries []inputs.HookEntry
	for _, path := range c.settingsPaths() {
		raw, err := os.ReadFile(path)
		if err != nil {
			c.logf("settings: skip %s: %v", path, err)
			continue
		}
		parsed := inputs.ParseHookDocument(raw)
		c.logf("settings: %s: %d hook entries", path, len(parsed))
		entries = append(entries, parsed...)
	}
	return entries
}

func (c *Collector) home() string {
	if c.Home != "" {
		return c.Home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func (c *Collector) logf(format string, args ...any) {
	if !c.Verbose {
		return
	}
	w := c.Log
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}
