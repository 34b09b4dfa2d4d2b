// Package status exposes the read model consumed by the external dashboard:
// the list of available fix agents and metrics derived from a batch report.
// Serving these over HTTP is the dashboard's job, not this repo's.
package status

import (
	"time"

	"srcfix/internal/batch"
	"srcfix/internal/config"
)

// Agent describes one available operation.
type Agent struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"` // "fixer" or "detector"
	Description string `json:"description"`
}

// Agents lists every operation srcfix can run. The list is static: agents
// are code, not configuration.
func Agents() []Agent {
	return []Agent{
		{
			Name:        config.OpRegionReindent,
			Kind:        "fixer",
			Description: "Adds one indentation level to under-indented lines inside a marker-delimited region.",
		},
		{
			Name:        config.OpDeclarationInject,
			Kind:        "fixer",
			Description: "Ensures a required declaration line exists, inserted after the last existing declaration.",
		},
		{
			Name:        config.OpAsyncDeficit,
			Kind:        "detector",
			Description: "Reports declarations whose fulfillment pattern count falls short; detection only, no rewrite.",
		},
	}
}

// Metrics summarizes one batch run for the dashboard.
type Metrics struct {
	RunID      string    `json:"run_id"`
	Timestamp  time.Time `json:"timestamp"`
	TotalFiles int       `json:"total_files"`
	FixedFiles int       `json:"fixed_files"`
	ErrorFiles int       `json:"error_files"`
	Deficits   int       `json:"reported_deficits"`
}

// Snapshot derives dashboard metrics from a batch report.
func Snapshot(r *batch.Report) Metrics {
	return Metrics{
		RunID:      r.RunID,
		Timestamp:  time.Now().UTC(),
		TotalFiles: r.Total,
		FixedFiles: r.Fixed,
		ErrorFiles: r.Errored(),
		Deficits:   r.Deficits(),
	}
}
