package output

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"agentmedic/internal/engine"
)

// Badge is a shields-style badge descriptor derived from a report. Color is
// keyed to the same thresholds as the grade bands.
type Badge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
}

const badgeLabel = "agent health"

// BadgeFor maps a report to its badge descriptor.
func BadgeFor(report *engine.Report) Badge {
	return Badge{
		SchemaVersion: 1,
		Label:         badgeLabel,
		Message:       fmt.Sprintf("%d%% (%s)", report.Percent, report.Grade),
		Color:         badgeColor(report.Grade),
	}
}

func badgeColor(grade engine.Grade) string {
	switch grade {
	case engine.GradeExcellent:
		return "brightgreen"
	case engine.GradeGood:
		return "yellowgreen"
	case engine.GradeNeedsWork:
		return "orange"
	default:
		return "red"
	}
}

// URL returns a static shields.io badge URL for embedding in a README.
func (b Badge) URL() string {
	return fmt.Sprintf("https://img.shields.io/badge/%s-%s-%s",
		shieldsEscape(b.Label),
		shieldsEscape(b.Message),
		b.Color)
}

// shieldsEscape applies the static-badge path rules: dashes and underscores
// are doubled, spaces become underscores, then standard path escaping.
func shieldsEscape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return url.PathEscape(s)
}

// RenderBadge writes the shields endpoint JSON for the report's badge.
func RenderBadge(w io.Writer, report *engine.Report) error {
	encoder := json.NewEncoder(w)
	return encoder.Encode(BadgeFor(report))
}
