package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/user/gpudoctor/pkg/engine"
)

func TestFormatComparison(t *testing.T) {
	a := &engine.Snapshot{Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)}
	b := &engine.Snapshot{Timestamp: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)}
	diffs := []engine.Difference{
		{Field: "Driver Version", ValueA: "550.54", ValueB: "551.86", Severity: engine.SeverityWarn},
	}

	text := FormatComparison(a, b, diffs, false)
	assert.Contains(t, text, "Found 1 difference(s):")
	assert.Contains(t, text, "[WARN] Driver Version")
	assert.Contains(t, text, "A: 550.54")
	assert.Contains(t, text, "B: 551.86")

	md := FormatComparison(a, b, diffs, true)
	assert.Contains(t, md, "# gpudoctor Snapshot Comparison")
	assert.Contains(t, md, "| Driver Version | 550.54 | 551.86 | WARN |")
}

func TestFormatComparisonNoDifferences(t *testing.T) {
	a := &engine.Snapshot{Timestamp: time.Now()}
	b := &engine.Snapshot{Timestamp: time.Now()}

	assert.Contains(t, FormatComparison(a, b, nil, false), "No differences found.")
	assert.Contains(t, FormatComparison(a, b, nil, true), "No differences found.")
}
