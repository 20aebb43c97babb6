// Package output renders a finished engine.Report. Renderers are pure
// presentation: they never rescore, and the report is read-only here.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"agentmedic/internal/engine"
)

// topFixesLimit caps the remediation section at the highest-weight failures.
const topFixesLimit = 3

const barWidth = 10

// RenderText writes the human-readable report: results grouped by category in
// registry order, per-category bars, the top fixes, and the score line.
func RenderText(w io.Writer, report *engine.Report) error {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, cs := range report.Categories {
		bold.Fprintf(w, "%s\n", cs.Category)
		for _, res := range report.Results {
			if res.Category != cs.Category {
				continue
			}
			if res.Passed {
				pass.Fprintf(w, "  ✓ ")
			} else {
				fail.Fprintf(w, "  ✗ ")
			}
			fmt.Fprintf(w, "%s (%d)\n", res.Question, res.Weight)
			if !res.Passed {
				dim.Fprintf(w, "      %s\n", res.Detail)
			}
		}
		fmt.Fprintf(w, "  %s %d/%d (%d%%)\n\n", bar(cs.Earned, cs.Total), cs.Earned, cs.Total, cs.Percent)
	}

	if fixes := report.FailedByWeight(); len(fixes) > 0 {
		bold.Fprintln(w, "Top fixes")
		limit := min(len(fixes), topFixesLimit)
		for i := 0; i < limit; i++ {
			f := fixes[i]
			fmt.Fprintf(w, "  %d. (%d pts) %s\n", i+1, f.Weight, f.Question)
			fmt.Fprintf(w, "     %s\n", f.Remediation)
		}
		fmt.Fprintln(w)
	}

	bold.Fprintf(w, "Score: %d/%d (%d%%) [%s]\n", report.Earned, report.Total, report.Percent, report.Grade)
	return nil
}

// bar renders a proportional block bar, earned over total.
func bar(earned, total int) string {
	filled := 0
	if total > 0 {
		filled = earned * barWidth / total
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.Repeat("█", filled))
	b.WriteString(strings.Repeat("░", barWidth-filled))
	b.WriteString("]")
	return b.String()
}
