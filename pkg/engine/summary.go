package engine

import (
	"fmt"
	"strings"
	"time"
)

// Summary condenses a run into the few lines users actually paste into
// support threads: the worst findings, deduplicated next steps, and a short
// machine summary block.
type Summary struct {
	TopIssues []string
	NextSteps []string
	Block     string
}

// Summarize derives the run summary from the fact snapshot and the sorted
// finding list.
func Summarize(facts Facts, findings []Finding, rc RunContext, toolVersion string, at time.Time) Summary {
	return Summary{
		TopIssues: topIssues(findings),
		NextSteps: nextSteps(findings),
		Block:     summaryBlock(facts, findings, rc, toolVersion, at),
	}
}

// topIssues lists up to five CRIT/WARN findings with their confidence.
func topIssues(findings []Finding) []string {
	var issues []string
	for _, f := range findings {
		if f.Severity != SeverityCrit && f.Severity != SeverityWarn {
			continue
		}
		conf := ""
		if f.Confidence > 0 {
			conf = fmt.Sprintf(" (%d%% confidence)", f.Confidence)
		}
		issues = append(issues, fmt.Sprintf("[%s] %s%s", f.Severity, f.Title, conf))
		if len(issues) >= 5 {
			break
		}
	}
	if len(issues) == 0 {
		issues = append(issues, "No significant issues detected.")
	}
	return issues
}

// nextSteps collects up to five unique steps from CRIT/WARN findings,
// preserving finding order.
func nextSteps(findings []Finding) []string {
	var steps []string
	seen := make(map[string]bool)
	for _, f := range findings {
		if f.Severity == SeverityInfo {
			continue
		}
		for _, step := range f.NextSteps {
			if seen[step] {
				continue
			}
			steps = append(steps, step)
			seen[step] = true
			if len(steps) >= 5 {
				return steps
			}
		}
	}
	if len(steps) == 0 {
		steps = append(steps, "No immediate action required. System appears healthy.")
	}
	return steps
}

func summaryBlock(facts Facts, findings []Finding, rc RunContext, toolVersion string, at time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "gpudoctor v%s | %s | mode: %s\n", toolVersion, at.Format("2006-01-02 15:04:05"), rc.Mode)
	fmt.Fprintf(&sb, "OS: %s %s | Arch: %s\n", facts.System.OSName, facts.System.OSVersion, facts.System.Architecture)

	for _, gpu := range facts.GPUs {
		if !gpu.IsNVIDIA {
			continue
		}
		fmt.Fprintf(&sb, "GPU: %s | Driver: %s", gpu.Name, gpu.DriverVersion)
		if gpu.VRAMTotalMB > 0 {
			fmt.Fprintf(&sb, " | VRAM: %d MB", gpu.VRAMTotalMB)
		}
		sb.WriteString("\n")
	}

	if facts.Driver.CUDAVersion != "" {
		fmt.Fprintf(&sb, "CUDA (driver): %s\n", facts.Driver.CUDAVersion)
	}

	crit, warn, _ := CountBySeverity(findings)
	fmt.Fprintf(&sb, "Findings: %d CRITICAL, %d WARNING, %d total\n", crit, warn, len(findings))

	return sb.String()
}
