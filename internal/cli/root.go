package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agentmedic/internal/collect"
	"agentmedic/internal/config"
	"agentmedic/internal/engine"
	"agentmedic/internal/flags"
	"agentmedic/internal/output"
	"agentmedic/internal/rules"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "agentmedic",
	Short: "Audit your AI-assistant configuration and report a health score",
	Long: `AgentMedic inspects your AI-assistant configuration (hooks, instruction
files, marker files) and produces a weighted health score across fixed
categories.

AgentMedic is audit-only: it reads well-known local paths, never modifies
anything, and makes no network calls. An unreadable or missing input never
aborts the run; it just scores as absent.

Output:
  By default the report is human-readable text. --json writes the structured
  report document; --badge writes a shields-style badge descriptor. Output
  flags are presentation only and never change scoring.

Exit codes:
  0 = overall score at or above the passing threshold (60%)
  1 = below the passing threshold

Examples:
  # Audit the current project with the default config dir (~/.claude)
  agentmedic

  # Machine-readable report
  agentmedic --json

  # Badge descriptor for a README pipeline
  agentmedic --badge

  # Audit another project against a custom config dir
  agentmedic --project /path/to/repo --config-dir /path/to/claude-config`,
	Args: cobra.NoArgs,
	// Unrecognized flags are ignored rather than fatal: the audit should
	// always produce a report.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		collector := collect.New(cfg.Paths.ConfigDir, cfg.Paths.ProjectDir)
		if collector.ConfigDir == "" {
			collector.ConfigDir = collect.DefaultConfigDir()
		}
		collector.Verbose = cfg.Runtime.Verbose

		in := collector.Collect()
		report := engine.Evaluate(in, rules.List())

		var err error
		switch cfg.Mode() {
		case config.ModeJSON:
			err = output.RenderJSON(cmd.OutOrStdout(), report)
		case config.ModeBadge:
			err = output.RenderBadge(cmd.OutOrStdout(), report)
		default:
			err = output.RenderText(cmd.OutOrStdout(), report)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		os.Exit(engine.ExitCode(report))
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Paths.ConfigDir, flags.FlagConfigDir, "", "Assistant config directory (default: ~/.claude)")
	rootCmd.Flags().StringVar(&cfg.Paths.ProjectDir, flags.FlagProject, "", "Project directory to audit (default: current directory)")
	rootCmd.Flags().BoolVar(&cfg.Output.JSON, flags.FlagJSON, false, "Write the structured report document instead of text")
	rootCmd.Flags().BoolVar(&cfg.Output.Badge, flags.FlagBadge, false, "Write a badge descriptor instead of text")
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose collection diagnostics on stderr")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
