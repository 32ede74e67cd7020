package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/user/gpudoctor/pkg/engine"
)

// GenerateText produces the human-readable report.txt content.
func GenerateText(r *Report) string {
	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format, args...)
	}
	line := func() { sb.WriteString(strings.Repeat("─", 72) + "\n") }

	line()
	w("  gpudoctor v%s — GPU Diagnostic Report\n", r.Metadata.ToolVersion)
	w("  %s\n", Disclaimer)
	line()
	w("  Generated: %s\n", r.Metadata.Timestamp.Format("2006-01-02 15:04:05 MST"))
	w("  Mode:      %s\n", r.Metadata.Mode)
	w("  Platform:  %s\n", r.Metadata.Platform)
	w("  Runtime:   %.1fs\n", r.Metadata.RuntimeSeconds)
	if r.Metadata.Redacted {
		w("  Redaction: ENABLED (identifying data removed)\n")
	} else {
		w("  Redaction: DISABLED\n")
	}
	line()

	w("\n== SUMMARY (paste this in support threads) ==\n\n")
	w("%s\n", r.Summary)
	line()

	w("\n== SYSTEM INFO ==\n\n")
	w("  OS:           %s %s\n", r.Facts.System.OSName, r.Facts.System.OSVersion)
	w("  Architecture: %s\n", r.Facts.System.Architecture)
	w("  CPU:          %s\n", r.Facts.System.CPUModel)
	if r.Facts.System.RAMTotalMB > 0 {
		w("  RAM:          %s MB\n", humanize.Comma(r.Facts.System.RAMTotalMB))
	}
	if r.Facts.System.Hostname != "" {
		w("  Hostname:     %s\n", r.Facts.System.Hostname)
	}
	line()

	w("\n== GPU INVENTORY ==\n\n")
	if len(r.Facts.GPUs) == 0 {
		w("  No GPUs detected.\n")
	}
	for _, gpu := range r.Facts.GPUs {
		w("  [GPU %d] %s\n", gpu.Index, gpu.Name)
		w("    Vendor:  %s\n", gpu.Vendor)
		if gpu.DriverVersion != "" {
			w("    Driver:  %s\n", gpu.DriverVersion)
		}
		if gpu.VRAMTotalMB > 0 {
			w("    VRAM:    %s MB\n", humanize.Comma(gpu.VRAMTotalMB))
		}
		if gpu.TemperatureC > 0 {
			w("    Temp:    %d°C\n", gpu.TemperatureC)
		}
		w("\n")
	}
	w("  NVIDIA Driver: %s\n", valueOrNA(r.Facts.Driver.Version))
	w("  CUDA (driver): %s\n", valueOrNA(r.Facts.Driver.CUDAVersion))
	line()

	w("\n== FINDINGS ==\n\n")
	if len(r.Findings) == 0 {
		w("  No issues detected.\n")
	} else {
		crit, warn, info := engine.CountBySeverity(r.Findings)
		w("  Total: %d CRITICAL, %d WARNING, %d INFO\n\n", crit, warn, info)

		for i, f := range r.Findings {
			w("  [%s] #%d: %s (confidence: %d%%)\n", f.Severity, i+1, f.Title, f.Confidence)
			w("    Evidence:     %s\n", f.Evidence)
			w("    Why:          %s\n", f.WhyItMatters)
			if len(f.NextSteps) > 0 {
				w("    Next Steps:\n")
				for _, step := range f.NextSteps {
					w("      • %s\n", step)
				}
			}
			w("\n")
		}
	}
	line()

	w("\n== TOP ISSUES ==\n\n")
	for i, issue := range r.TopIssues {
		w("  %d. %s\n", i+1, issue)
	}
	w("\n== RECOMMENDED NEXT STEPS ==\n\n")
	for i, step := range r.NextSteps {
		w("  %d. %s\n", i+1, step)
	}
	w("\n")
	line()

	if len(r.Notes) > 0 {
		w("\n== COLLECTOR NOTES ==\n\n")
		for _, n := range r.Notes {
			w("  [%s] %s\n", n.Collector, n.Message)
		}
		w("\n")
		line()
	}

	w("\n== PRIVACY & DATA ==\n\n")
	w("  This report was generated locally. No data was sent anywhere.\n")
	if r.Metadata.Redacted {
		w("  Redaction was applied to remove usernames, hostnames, and IP addresses.\n")
	} else {
		w("  Redaction was DISABLED. This report may contain identifying information.\n")
	}
	w("  gpudoctor does not modify your system, drivers, or settings.\n\n")
	line()
	w("  %s\n", Disclaimer)
	line()

	return sb.String()
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
