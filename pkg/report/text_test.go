package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/gpudoctor/pkg/collectors"
	"github.com/user/gpudoctor/pkg/engine"
)

func sampleReport() *Report {
	return &Report{
		Metadata: Metadata{
			ToolVersion: "0.4.0",
			Timestamp:   time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
			Mode:        "gaming",
			Platform:    "linux",
			Redacted:    true,
		},
		Facts: engine.Facts{
			System: engine.SystemInfo{
				OSName: "linux", OSVersion: "6.8.0", Architecture: "amd64",
				CPUModel: "Intel Core i7-13700K", RAMTotalMB: 32768,
			},
			GPUs: []engine.GPUInfo{
				{Index: 0, Name: "GeForce RTX 4070", Vendor: "NVIDIA", DriverVersion: "551.86", VRAMTotalMB: 12282, TemperatureC: 46, IsNVIDIA: true},
			},
			Driver: engine.DriverInfo{Version: "551.86", CUDAVersion: "12.4"},
		},
		TopIssues: []string{"No significant issues detected."},
		NextSteps: []string{"No immediate action required. System appears healthy."},
		Summary:   "gpudoctor v0.4.0 | 2026-08-20 14:30:00 | mode: gaming\n",
	}
}

func TestGenerateTextCleanRun(t *testing.T) {
	text := GenerateText(sampleReport())

	for _, section := range []string{
		"== SUMMARY (paste this in support threads) ==",
		"== SYSTEM INFO ==",
		"== GPU INVENTORY ==",
		"== FINDINGS ==",
		"== TOP ISSUES ==",
		"== RECOMMENDED NEXT STEPS ==",
		"== PRIVACY & DATA ==",
	} {
		assert.Contains(t, text, section)
	}

	assert.Contains(t, text, "No issues detected.")
	assert.Contains(t, text, "[GPU 0] GeForce RTX 4070")
	assert.Contains(t, text, "VRAM:    12,282 MB")
	assert.Contains(t, text, "RAM:          32,768 MB")
	assert.Contains(t, text, "Redaction: ENABLED")
	assert.Contains(t, text, Disclaimer)
	// No collector notes section without notes.
	assert.NotContains(t, text, "== COLLECTOR NOTES ==")
}

func TestGenerateTextWithFindingsAndNotes(t *testing.T) {
	r := sampleReport()
	r.Metadata.Redacted = false
	r.Findings = []engine.Finding{
		{
			Rule: "low-vram", Severity: engine.SeverityWarn, Title: "Low VRAM for Modern Workloads",
			Evidence: "GPU GTX 1050 has 2048 MB VRAM (< 4 GB).", WhyItMatters: "Too little memory.",
			NextSteps: []string{"Lower texture quality."}, Confidence: 85, Category: "gpu",
		},
	}
	r.Notes = []collectors.Note{{Collector: "gpu.lspci", Message: "lspci not found"}}

	text := GenerateText(r)
	assert.Contains(t, text, "Total: 0 CRITICAL, 1 WARNING, 0 INFO")
	assert.Contains(t, text, "[WARN] #1: Low VRAM for Modern Workloads (confidence: 85%)")
	assert.Contains(t, text, "Evidence:     GPU GTX 1050 has 2048 MB VRAM (< 4 GB).")
	assert.Contains(t, text, "• Lower texture quality.")
	assert.Contains(t, text, "== COLLECTOR NOTES ==")
	assert.Contains(t, text, "[gpu.lspci] lspci not found")
	assert.Contains(t, text, "Redaction was DISABLED.")
}

func TestGenerateTextNoGPUs(t *testing.T) {
	r := sampleReport()
	r.Facts.GPUs = nil
	r.Facts.Driver = engine.DriverInfo{}

	text := GenerateText(r)
	assert.Contains(t, text, "No GPUs detected.")
	assert.Contains(t, text, "NVIDIA Driver: N/A")
	assert.Contains(t, text, "CUDA (driver): N/A")
}

func TestGenerateJSONRoundTrip(t *testing.T) {
	data, err := GenerateJSON(sampleReport())
	require.NoError(t, err)
	assert.Contains(t, data, `"tool_version": "0.4.0"`)
	assert.Contains(t, data, `"mode": "gaming"`)
}

func TestGenerateMarkdownSections(t *testing.T) {
	r := sampleReport()
	r.Findings = []engine.Finding{
		{Rule: "hybrid-gpu", Severity: engine.SeverityInfo, Title: "Hybrid GPU Configuration Detected", Evidence: "Both NVIDIA and integrated graphics detected.", NextSteps: []string{}},
	}

	md := GenerateMarkdown(r)
	assert.True(t, strings.HasPrefix(md, "# gpudoctor"))
	assert.Contains(t, md, "## System")
	assert.Contains(t, md, "## GPUs")
	assert.Contains(t, md, "## Findings")
	assert.Contains(t, md, "Hybrid GPU Configuration Detected")
}
