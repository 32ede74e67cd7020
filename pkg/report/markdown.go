package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/user/gpudoctor/pkg/engine"
)

// GenerateMarkdown produces a report ready for pasting into GitHub issues or
// forum posts.
func GenerateMarkdown(r *Report) string {
	var sb strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&sb, format, args...)
	}

	w("# gpudoctor Diagnostic Report\n\n")
	w("> %s\n\n", Disclaimer)
	w("- **Generated:** %s\n", r.Metadata.Timestamp.Format("2006-01-02 15:04:05 MST"))
	w("- **Mode:** %s\n", r.Metadata.Mode)
	w("- **Platform:** %s\n", r.Metadata.Platform)
	w("- **Tool version:** %s\n\n", r.Metadata.ToolVersion)

	w("## Summary\n\n```\n%s```\n\n", r.Summary)

	w("## System\n\n")
	w("| Field | Value |\n|---|---|\n")
	w("| OS | %s %s |\n", r.Facts.System.OSName, r.Facts.System.OSVersion)
	w("| Architecture | %s |\n", r.Facts.System.Architecture)
	w("| CPU | %s |\n", r.Facts.System.CPUModel)
	if r.Facts.System.RAMTotalMB > 0 {
		w("| RAM | %s MB |\n", humanize.Comma(r.Facts.System.RAMTotalMB))
	}
	w("\n")

	w("## GPUs\n\n")
	if len(r.Facts.GPUs) == 0 {
		w("No GPUs detected.\n\n")
	} else {
		w("| # | Name | Vendor | Driver | VRAM | Temp |\n|---|---|---|---|---|---|\n")
		for _, gpu := range r.Facts.GPUs {
			vram, temp := "?", "?"
			if gpu.VRAMTotalMB > 0 {
				vram = fmt.Sprintf("%s MB", humanize.Comma(gpu.VRAMTotalMB))
			}
			if gpu.TemperatureC > 0 {
				temp = fmt.Sprintf("%d°C", gpu.TemperatureC)
			}
			w("| %d | %s | %s | %s | %s | %s |\n",
				gpu.Index, gpu.Name, gpu.Vendor, valueOrNA(gpu.DriverVersion), vram, temp)
		}
		w("\n")
	}
	w("- **NVIDIA Driver:** %s\n", valueOrNA(r.Facts.Driver.Version))
	w("- **CUDA (driver):** %s\n\n", valueOrNA(r.Facts.Driver.CUDAVersion))

	w("## Findings\n\n")
	if len(r.Findings) == 0 {
		w("No issues detected.\n\n")
	} else {
		crit, warn, info := engine.CountBySeverity(r.Findings)
		w("**Total:** %d CRITICAL, %d WARNING, %d INFO\n\n", crit, warn, info)
		for i, f := range r.Findings {
			w("### %d. [%s] %s\n\n", i+1, f.Severity, f.Title)
			w("- **Evidence:** %s\n", f.Evidence)
			w("- **Why it matters:** %s\n", f.WhyItMatters)
			w("- **Confidence:** %d%%\n", f.Confidence)
			if len(f.NextSteps) > 0 {
				w("- **Next steps:**\n")
				for _, step := range f.NextSteps {
					w("  - %s\n", step)
				}
			}
			w("\n")
		}
	}

	w("---\n\n*This report was generated locally. No data was sent anywhere.*\n")

	return sb.String()
}
