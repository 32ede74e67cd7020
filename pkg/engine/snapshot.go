package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Snapshot is a timestamped copy of one run's fact snapshot. Only facts are
// persisted, never findings; snapshots exist so two points in time can be
// diffed after a driver update or hardware change.
type Snapshot struct {
	ToolVersion string    `json:"tool_version"`
	Timestamp   time.Time `json:"timestamp"`
	Platform    string    `json:"platform"`
	Facts       Facts     `json:"facts"`
}

// Difference is a single field-level change between two snapshots, tagged
// with how much the change matters.
type Difference struct {
	Field    string   `json:"field"`
	ValueA   string   `json:"value_a"`
	ValueB   string   `json:"value_b"`
	Severity Severity `json:"severity"`
}

// NewSnapshot wraps a fact snapshot with run metadata.
func NewSnapshot(facts Facts, rc RunContext, toolVersion string) Snapshot {
	return Snapshot{
		ToolVersion: toolVersion,
		Timestamp:   time.Now(),
		Platform:    rc.Platform,
		Facts:       facts,
	}
}

// WriteSnapshot saves the snapshot as a timestamped JSON file in outDir and
// returns the written path.
func WriteSnapshot(snap Snapshot, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	name := fmt.Sprintf("gpudoctor-snapshot-%s.json", snap.Timestamp.Format("20060102-150405"))
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// LoadSnapshot reads a snapshot file written by WriteSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// CompareSnapshots diffs two snapshots field by field. A changed GPU count is
// critical (hardware appeared or vanished); driver and CUDA changes are
// warnings; the rest is informational.
func CompareSnapshots(a, b *Snapshot) []Difference {
	var diffs []Difference
	add := func(field, va, vb string, sev Severity) {
		if va != vb {
			diffs = append(diffs, Difference{Field: field, ValueA: va, ValueB: vb, Severity: sev})
		}
	}

	add("OS Version", a.Facts.System.OSVersion, b.Facts.System.OSVersion, SeverityInfo)
	add("Driver Version", a.Facts.Driver.Version, b.Facts.Driver.Version, SeverityWarn)
	add("CUDA Version", a.Facts.Driver.CUDAVersion, b.Facts.Driver.CUDAVersion, SeverityWarn)
	add("GPU Count", fmt.Sprintf("%d", len(a.Facts.GPUs)), fmt.Sprintf("%d", len(b.Facts.GPUs)), SeverityCrit)

	n := len(a.Facts.GPUs)
	if len(b.Facts.GPUs) < n {
		n = len(b.Facts.GPUs)
	}
	for i := 0; i < n; i++ {
		prefix := fmt.Sprintf("GPU[%d]", i)
		add(prefix+" Name", a.Facts.GPUs[i].Name, b.Facts.GPUs[i].Name, SeverityWarn)
		add(prefix+" Driver", a.Facts.GPUs[i].DriverVersion, b.Facts.GPUs[i].DriverVersion, SeverityWarn)
		add(prefix+" VRAM Total",
			fmt.Sprintf("%d MB", a.Facts.GPUs[i].VRAMTotalMB),
			fmt.Sprintf("%d MB", b.Facts.GPUs[i].VRAMTotalMB), SeverityInfo)
	}

	return diffs
}
