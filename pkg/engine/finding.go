package engine

// Finding is one reported diagnostic result, derived from a fired rule plus
// the fact snapshot. It is created by the evaluator and owned by the caller;
// nothing mutates it after creation except next-step enrichment, which the
// reporting pipeline applies explicitly.
type Finding struct {
	Rule         string   `json:"rule"`
	Severity     Severity `json:"severity"`
	Title        string   `json:"title"`
	Evidence     string   `json:"evidence"`
	WhyItMatters string   `json:"why_it_matters"`
	NextSteps    []string `json:"next_steps"`
	Confidence   int      `json:"confidence"`
	Category     string   `json:"category"`
}

// makeFinding builds a Finding from a fired rule. Severity, title, category
// and confidence come from the rule verbatim; evidence is produced by the
// check that fired. Next steps start empty and are filled in later from the
// remediation catalog.
func makeFinding(rule Rule, evidence string) Finding {
	return Finding{
		Rule:         rule.ID,
		Severity:     rule.Severity,
		Title:        rule.Title,
		Evidence:     evidence,
		WhyItMatters: rule.Description,
		NextSteps:    []string{},
		Confidence:   rule.BaseConfidence,
		Category:     rule.Category,
	}
}

// CountBySeverity returns the number of CRIT, WARN and INFO findings.
func CountBySeverity(findings []Finding) (crit, warn, info int) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityCrit:
			crit++
		case SeverityWarn:
			warn++
		case SeverityInfo:
			info++
		}
	}
	return crit, warn, info
}
