package report

import (
	"encoding/json"
	"fmt"
)

// GenerateJSON produces the machine-readable report.json content.
func GenerateJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}
