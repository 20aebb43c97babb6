package collect

import (
	"os"
	"path/filepath"
	"strings"

	"agentmedic/internal/inputs"
)

// watchdogSearchDepth bounds the watchdog script search. Marker paths are
// otherwise direct stat calls; only the watchdog lives at a variable depth.
const watchdogSearchDepth = 3

// collectMarkers evaluates every well-known marker path. A stat error of any
// kind (missing, permission denied) counts as absent.
func (c *Collector) collectMarkers() map[inputs.Marker]bool {
	cfg, prj := c.ConfigDir, c.ProjectDir
	markers := map[inputs.Marker]bool{
		inputs.MarkerMemoryDir: pathExists(filepath.Join(cfg, "memory")),
		inputs.MarkerSessions: anyExists(
			filepath.Join(cfg, "projects"),
			filepath.Join(cfg, "sessions"),
		),
		inputs.MarkerMissionFile: anyExists(
			filepath.Join(prj, "MISSION.md"),
			filepath.Join(prj, "mission.md"),
		),
		inputs.MarkerTaskFile: anyExists(
			filepath.Join(prj, "TODO.md"),
			filepath.Join(prj, "TASKS.md"),
		),
		inputs.MarkerCredentialsFile: pathExists(filepath.Join(cfg, ".credentials.json")),
		inputs.MarkerWatchdog: c.watchdogExists(
			filepath.Join(cfg, "hooks"),
			filepath.Join(prj, "scripts"),
		),
		inputs.MarkerLogsDir: anyExists(
			filepath.Join(cfg, "logs"),
			filepath.Join(prj, "logs"),
		),
		inputs.MarkerGitignore: pathExists(filepath.Join(prj, ".gitignore")),
		inputs.MarkerEnvFile:   pathExists(filepath.Join(prj, ".env")),
	}
	for m, found := range markers {
		if found {
			c.logf("markers: %s present", m)
		}
	}
	return markers
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func anyExists(paths ...string) bool {
	for _, p := range paths {
		if pathExists(p) {
			return true
		}
	}
	return false
}

// watchdogExists searches the given roots for a file whose name starts with
// "watchdog". The walk is depth-bounded and skips hidden directories and
// dependency caches so large trees stay cheap.
func (c *Collector) watchdogExists(roots ...string) bool {
	for _, root := range roots {
		if findWatchdog(root, watchdogSearchDepth) {
			return true
		}
	}
	return false
}

func findWatchdog(dir string, depth int) bool {
	if depth <= 0 {
		return false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if skipDir(name) {
				continue
			}
			if findWatchdog(filepath.Join(dir, name), depth-1) {
				return true
			}
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), "watchdog") {
			return true
		}
	}
	return false
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__":
		return true
	}
	return false
}
