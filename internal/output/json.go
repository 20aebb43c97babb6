package output

import (
	"encoding/json"
	"io"

	"agentmedic/internal/engine"
	"agentmedic/internal/rules"
)

// SchemaVersion identifies the structured-report document layout. Bump on
// any breaking field change.
const SchemaVersion = 1

type jsonReport struct {
	SchemaVersion int            `json:"schema_version"`
	Score         jsonScore      `json:"score"`
	Categories    []jsonCategory `json:"categories"`
	Checks        []jsonCheck    `json:"checks"`
}

type jsonScore struct {
	Earned  int          `json:"earned"`
	Total   int          `json:"total"`
	Percent int          `json:"percent"`
	Grade   engine.Grade `json:"grade"`
}

type jsonCategory struct {
	Category rules.Category `json:"category"`
	Earned   int            `json:"earned"`
	Total    int            `json:"total"`
	Percent  int            `json:"percent"`
}

type jsonCheck struct {
	ID       string         `json:"id"`
	Category rules.Category `json:"category"`
	Question string         `json:"question"`
	Weight   int            `json:"weight"`
	Passed   bool           `json:"passed"`
	Detail   string         `json:"detail"`
	Points   int            `json:"points"`
	// Remediation is only populated for failed checks.
	Remediation string `json:"remediation,omitempty"`
}

// RenderJSON writes the machine-readable report document.
func RenderJSON(w io.Writer, report *engine.Report) error {
	doc := jsonReport{
		SchemaVersion: SchemaVersion,
		Score: jsonScore{
			Earned:  report.Earned,
			Total:   report.Total,
			Percent: report.Percent,
			Grade:   report.Grade,
		},
		Categories: make([]jsonCategory, 0, len(report.Categories)),
		Checks:     make([]jsonCheck, 0, len(report.Results)),
	}
	for _, cs := range report.Categories {
		doc.Categories = append(doc.Categories, jsonCategory{
			Category: cs.Category,
			Earned:   cs.Earned,
			Total:    cs.Total,
			Percent:  cs.Percent,
		})
	}
	for _, res := range report.Results {
		c := jsonCheck{
			ID:       res.ID,
			Category: res.Category,
			Question: res.Question,
			Weight:   res.Weight,
			Passed:   res.Passed,
			Detail:   res.Detail,
			Points:   res.Points,
		}
		if !res.Passed {
			c.Remediation = res.Remediation
		}
		doc.Checks = append(doc.Checks, c)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
