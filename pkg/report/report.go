// Package report renders a completed diagnostic run as text, JSON or
// Markdown. Reports are generated locally and never leave the machine.
package report

import (
	"time"

	"github.com/user/gpudoctor/pkg/collectors"
	"github.com/user/gpudoctor/pkg/engine"
)

// Disclaimer shown in every report.
const Disclaimer = "gpudoctor is an unofficial community tool, not affiliated with or endorsed by any GPU vendor."

// Metadata describes the run that produced a report.
type Metadata struct {
	ToolVersion    string    `json:"tool_version"`
	Timestamp      time.Time `json:"timestamp"`
	Mode           string    `json:"mode"`
	Platform       string    `json:"platform"`
	RuntimeSeconds float64   `json:"runtime_seconds"`
	Redacted       bool      `json:"redacted"`
}

// Report is the complete collected and analyzed result of one run.
type Report struct {
	Metadata  Metadata          `json:"metadata"`
	Facts     engine.Facts      `json:"facts"`
	Findings  []engine.Finding  `json:"findings"`
	TopIssues []string          `json:"top_issues"`
	NextSteps []string          `json:"next_steps"`
	Summary   string            `json:"summary_block"`
	Notes     []collectors.Note `json:"collector_notes,omitempty"`
}
