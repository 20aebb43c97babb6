package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants helps avoid drift between Cobra flag wiring and
// other code paths that need to reference flags (e.g. help text).
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Input locations
	FlagConfigDir = "config-dir"
	FlagProject   = "project"

	// Output modes (presentation only; none affect scoring)
	FlagJSON  = "json"
	FlagBadge = "badge"

	// Runtime
	FlagVerbose = "verbose"
)
