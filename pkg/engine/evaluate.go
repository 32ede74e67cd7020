package engine

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Evaluate runs every applicable catalog rule against the fact snapshot and
// returns the findings sorted by severity (CRIT, WARN, INFO, then anything
// else). The sort is stable: findings of equal severity keep the catalog
// order, so identical inputs always produce identical output.
func Evaluate(facts Facts, catalog *Catalog, rc RunContext) []Finding {
	findings := make([]Finding, 0, len(catalog.Rules))

	for _, rule := range catalog.Rules {
		if !rule.AppliesTo(rc) {
			continue
		}
		if f, fired := evaluateRule(rule, facts); fired {
			findings = append(findings, f)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank(findings[i].Severity) < severityRank(findings[j].Severity)
	})

	return findings
}

// evaluateRule dispatches on the rule id to one of the built-in checks.
// Each check returns at most one finding. Ids without a built-in check are
// inert: the catalog is allowed to evolve ahead of this binary, so skew is
// logged rather than treated as an error.
func evaluateRule(rule Rule, facts Facts) (Finding, bool) {
	switch rule.ID {
	case "no-nvidia-gpu":
		if !facts.HasNVIDIA() && len(facts.GPUs) == 0 {
			return makeFinding(rule, "No NVIDIA GPU detected in system."), true
		}

	case "hybrid-gpu":
		nvidia := facts.NVIDIACount()
		if nvidia > 0 && len(facts.GPUs) > nvidia {
			return makeFinding(rule, "Both NVIDIA and integrated graphics detected."), true
		}

	case "driver-not-detected":
		if facts.Driver.Version == "" {
			return makeFinding(rule, "nvidia-smi did not return a driver version."), true
		}

	case "nvidia-smi-missing":
		if len(facts.GPUs) == 0 && facts.Driver.Version == "" {
			return makeFinding(rule, "nvidia-smi was not found or returned no data."), true
		}

	case "low-vram":
		for _, gpu := range facts.GPUs {
			// VRAMTotalMB == 0 means unknown, not zero megabytes.
			if gpu.IsNVIDIA && gpu.VRAMTotalMB > 0 && gpu.VRAMTotalMB < 4096 {
				evidence := fmt.Sprintf("GPU %s has %d MB VRAM (< 4 GB).", gpu.Name, gpu.VRAMTotalMB)
				return makeFinding(rule, evidence), true
			}
		}

	case "gpu-running-hot":
		for _, gpu := range facts.GPUs {
			if gpu.TemperatureC >= 75 && gpu.TemperatureC < 85 {
				return makeFinding(rule, fmt.Sprintf("GPU temperature is %d°C.", gpu.TemperatureC)), true
			}
		}

	case "thermal-throttling":
		for _, gpu := range facts.GPUs {
			if gpu.TemperatureC >= 85 {
				evidence := fmt.Sprintf("GPU temperature is %d°C — exceeds safe limit.", gpu.TemperatureC)
				return makeFinding(rule, evidence), true
			}
		}

	default:
		log.Warn("no built-in check for rule, skipping", "rule", rule.ID)
	}

	return Finding{}, false
}
