package engine

// Severity classifies how urgent a finding is.
type Severity string

const (
	SeverityCrit Severity = "CRIT"
	SeverityWarn Severity = "WARN"
	SeverityInfo Severity = "INFO"
)

// severityRank maps a severity onto the fixed total order used for sorting:
// CRIT < WARN < INFO < anything else. Unrecognized values are valid rule data,
// they just sort last.
func severityRank(s Severity) int {
	switch s {
	case SeverityCrit:
		return 0
	case SeverityWarn:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// Rule is one declarative diagnostic rule from the catalog. The ID is the
// stable key that selects which built-in check runs; everything else is
// metadata copied into the finding when the check fires.
type Rule struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Category       string   `yaml:"category" json:"category"`
	Severity       Severity `yaml:"severity" json:"severity"`
	BaseConfidence int      `yaml:"base_confidence" json:"base_confidence"`
	Modes          []string `yaml:"modes" json:"modes"`
	Platform       string   `yaml:"platform,omitempty" json:"platform,omitempty"`
	Description    string   `yaml:"description" json:"description"`
}

// AppliesTo reports whether the rule is eligible for evaluation under the
// given run context. A rule with an empty modes set never applies; a rule
// without a platform applies everywhere. Both matches are exact and
// case-sensitive.
func (r Rule) AppliesTo(rc RunContext) bool {
	modeOK := false
	for _, m := range r.Modes {
		if m == rc.Mode {
			modeOK = true
			break
		}
	}
	if !modeOK {
		return false
	}
	if r.Platform != "" && r.Platform != rc.Platform {
		return false
	}
	return true
}
