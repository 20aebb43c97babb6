package collect

import (
	"os"
	"path/filepath"
	"strings"
)

// instructionCandidates is the fixed, prioritized list of instruction-file
// locations: global home-level, global config-dir, project root (both common
// names), then the project config subdirectory. Order is part of the output
// contract: existing files are concatenated in this order.
func (c *Collector) instructionCandidates() []string {
	var paths []string
	if home := c.home(); home != "" {
		paths = append(paths, filepath.Join(home, "CLAUDE.md"))
	}
	paths = append(paths,
		filepath.Join(c.ConfigDir, "CLAUDE.md"),
		filepath.Join(c.ProjectDir, "CLAUDE.md"),
		filepath.Join(c.ProjectDir, "AGENTS.md"),
		filepath.Join(c.ProjectDir, ".claude", "CLAUDE.md"),
	)
	return paths
}

// collectInstructions concatenates all instruction files that exist. The
// snapshot lower-cases the text; missing or unreadable files are skipped.
func (c *Collector) collectInstructions() string {
	var b strings.Builder
	for _, path := range c.instructionCandidates() {
		raw, err := os.ReadFile(path)
		if err != nil {
			c.logf("instructions: skip %s: %v", path, err)
			continue
		}
		c.logf("instructions: %s: %d bytes", path, len(raw))
		b.Write(raw)
		b.WriteString("\n")
	}
	return b.String()
}
