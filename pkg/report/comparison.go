package report

import (
	"fmt"
	"strings"

	"github.com/user/gpudoctor/pkg/engine"
)

// FormatComparison renders a snapshot diff as plain text or Markdown.
func FormatComparison(a, b *engine.Snapshot, diffs []engine.Difference, markdown bool) string {
	var sb strings.Builder

	if markdown {
		sb.WriteString("# gpudoctor Snapshot Comparison\n\n")
		fmt.Fprintf(&sb, "**Snapshot A:** %s\n\n", a.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&sb, "**Snapshot B:** %s\n\n", b.Timestamp.Format("2006-01-02 15:04:05"))

		if len(diffs) == 0 {
			sb.WriteString("No differences found.\n")
			return sb.String()
		}
		sb.WriteString("| Field | Snapshot A | Snapshot B | Severity |\n")
		sb.WriteString("|-------|-----------|-----------|----------|\n")
		for _, d := range diffs {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", d.Field, d.ValueA, d.ValueB, d.Severity)
		}
		return sb.String()
	}

	sb.WriteString("gpudoctor Snapshot Comparison\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n")
	fmt.Fprintf(&sb, "Snapshot A: %s\n", a.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Snapshot B: %s\n", b.Timestamp.Format("2006-01-02 15:04:05"))
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(diffs) == 0 {
		sb.WriteString("No differences found.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "Found %d difference(s):\n\n", len(diffs))
	for _, d := range diffs {
		fmt.Fprintf(&sb, "  [%s] %s\n", d.Severity, d.Field)
		fmt.Fprintf(&sb, "    A: %s\n", d.ValueA)
		fmt.Fprintf(&sb, "    B: %s\n\n", d.ValueB)
	}
	return sb.String()
}
