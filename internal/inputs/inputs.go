// Package inputs defines the immutable snapshot of collected configuration
// that rules evaluate against. The snapshot is produced once per run by the
// collector; rules must treat it as read-only.
package inputs

import "strings"

// HookEntry is a single normalized hook binding: a lifecycle event name and
// the command it runs. Both hook-document shapes resolve to this.
type HookEntry struct {
	Event   string `json:"event"`
	Command string `json:"command"`
}

// Marker names a well-known file or directory whose mere existence signals a
// configuration pattern. Contents are never inspected.
type Marker string

const (
	// MarkerMemoryDir is a persistent memory directory under the assistant
	// config dir.
	MarkerMemoryDir Marker = "memory_dir"

	// MarkerSessions is a session/transcript capture directory under the
	// assistant config dir.
	MarkerSessions Marker = "sessions"

	// MarkerMissionFile is a mission statement file at the project root.
	MarkerMissionFile Marker = "mission_file"

	// MarkerTaskFile is a task/TODO tracking file at the project root.
	MarkerTaskFile Marker = "task_file"

	// MarkerCredentialsFile is a plaintext credentials file under the
	// assistant config dir.
	MarkerCredentialsFile Marker = "credentials_file"

	// MarkerWatchdog is a watchdog script under the config hooks dir or the
	// project scripts dir.
	MarkerWatchdog Marker = "watchdog"

	// MarkerLogsDir is a log directory under the config dir or project root.
	MarkerLogsDir Marker = "logs_dir"

	// MarkerGitignore is a .gitignore at the project root.
	MarkerGitignore Marker = "gitignore"

	// MarkerEnvFile is a .env file at the project root.
	MarkerEnvFile Marker = "env_file"
)

// Inputs is the per-run snapshot of everything rules may look at.
//
// Instructions is the concatenation of all instruction files found, already
// lower-cased so predicates can match case-insensitively without repeating
// the normalization.
type Inputs struct {
	Hooks        []HookEntry     `json:"hooks"`
	Instructions string          `json:"instructions"`
	Markers      map[Marker]bool `json:"markers"`
}

// New returns an Inputs snapshot. A nil markers map is treated as all-absent.
func New(hooks []HookEntry, instructions string, markers map[Marker]bool) *Inputs {
	return &Inputs{
		Hooks:        hooks,
		Instructions: strings.ToLower(instructions),
		Markers:      markers,
	}
}

// Empty returns a snapshot with no hooks, no instruction text, and every
// marker absent. Useful for tests and for degraded runs.
func Empty() *Inputs {
	return &Inputs{}
}

// Marker reports whether the named marker was found.
func (in *Inputs) Marker(m Marker) bool {
	if in == nil || in.Markers == nil {
		return false
	}
	return in.Markers[m]
}

// HookTextContains reports whether any hook command contains the substring
// (case-insensitive), returning the event name of the first match.
func (in *Inputs) HookTextContains(substr string) (string, bool) {
	if in == nil {
		return "", false
	}
	needle := strings.ToLower(substr)
	for _, h := range in.Hooks {
		if strings.Contains(strings.ToLower(h.Command), needle) {
			return h.Event, true
		}
	}
	return "", false
}

// HookEventContains reports whether any hook is bound to an event whose name
// contains the substring (case-insensitive).
func (in *Inputs) HookEventContains(substr string) bool {
	if in == nil {
		return false
	}
	needle := strings.ToLower(substr)
	for _, h := range in.Hooks {
		if strings.Contains(strings.ToLower(h.Event), needle) {
			return true
		}
	}
	return false
}

// InstructionsContain reports whether the concatenated instruction text
// contains the substring. The snapshot text is lower-cased at construction,
// so callers pass lower-case needles.
func (in *Inputs) InstructionsContain(substr string) bool {
	if in == nil {
		return false
	}
	return strings.Contains(in.Instructions, substr)
}

// InstructionsContainAny reports whether any of the substrings is present,
// returning the first match.
func (in *Inputs) InstructionsContainAny(substrs ...string) (string, bool) {
	for _, s := range substrs {
		if in.InstructionsContain(s) {
			return s, true
		}
	}
	return "", false
}
