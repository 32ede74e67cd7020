package engine

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed remediations.yaml
var embeddedRemediations []byte

// Remediation holds the ordered next steps for one rule id.
type Remediation struct {
	Rule  string   `yaml:"rule"`
	Steps []string `yaml:"steps"`
}

type remediationsFile struct {
	Remediations []Remediation `yaml:"remediations"`
}

// RemediationCatalog maps rule ids to remediation steps. It is applied after
// evaluation: the evaluator itself always emits findings with empty next
// steps, and the reporting pipeline enriches them from this catalog.
type RemediationCatalog struct {
	steps map[string][]string
}

// LoadRemediations loads the embedded remediation catalog.
func LoadRemediations() (*RemediationCatalog, error) {
	return parseRemediations(embeddedRemediations)
}

// LoadRemediationsFile loads a remediation catalog from a YAML file.
func LoadRemediationsFile(path string) (*RemediationCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read remediations: %w", err)
	}
	return parseRemediations(data)
}

func parseRemediations(data []byte) (*RemediationCatalog, error) {
	var f remediationsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse remediations: %w", err)
	}

	c := &RemediationCatalog{steps: make(map[string][]string, len(f.Remediations))}
	for _, r := range f.Remediations {
		c.steps[r.Rule] = r.Steps
	}
	return c, nil
}

// StepsFor returns the remediation steps for a rule id, or nil if none exist.
func (c *RemediationCatalog) StepsFor(rule string) []string {
	return c.steps[rule]
}

// Enrich copies matching remediation steps into each finding's next steps.
// Findings without a remediation entry keep their empty step list.
func (c *RemediationCatalog) Enrich(findings []Finding) {
	for i := range findings {
		if steps, ok := c.steps[findings[i].Rule]; ok {
			findings[i].NextSteps = append([]string{}, steps...)
		}
	}
}
