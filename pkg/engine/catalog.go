package engine

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embeddedRules []byte

//go:embed rules.schema.json
var rulesSchema []byte

const rulesSchemaID = "https://github.com/user/gpudoctor/pkg/engine/rules.schema.json"

// Catalog is the loaded rule set for one run. It is loaded exactly once and
// treated as read-only afterwards; the evaluator re-sorts output, never input.
type Catalog struct {
	Description string `yaml:"description" json:"description"`
	Version     string `yaml:"version" json:"version"`
	Rules       []Rule `yaml:"rules" json:"rules"`
}

// LoadError is a fatal catalog load failure: missing source, unreadable data,
// or a schema violation. The catalog is all-or-nothing; a run never proceeds
// on a partially valid rule set.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("rule catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadCatalog loads and validates the embedded rule catalog.
func LoadCatalog() (*Catalog, error) {
	return parseCatalog(embeddedRules, "embedded")
}

// LoadCatalogFile loads and validates a rule catalog from a YAML file,
// replacing the embedded default.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return parseCatalog(data, path)
}

func parseCatalog(data []byte, source string) (*Catalog, error) {
	if err := validateCatalog(data); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	// Rule ids are dispatch keys; a catalog with two entries for the same id
	// has no well-defined meaning.
	seen := make(map[string]bool, len(catalog.Rules))
	for _, rule := range catalog.Rules {
		if seen[rule.ID] {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("duplicate rule id %q", rule.ID)}
		}
		seen[rule.ID] = true
	}
	return &catalog, nil
}

// validateCatalog checks the raw YAML against the catalog JSON schema. The
// document is round-tripped through encoding/json so the validator sees the
// value shapes it expects.
func validateCatalog(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(jsonData, &jsonDoc); err != nil {
		return fmt.Errorf("convert to json: %w", err)
	}

	schema, err := compileRulesSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(jsonDoc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

func compileRulesSchema() (*jsonschema.Schema, error) {
	var raw any
	if err := json.Unmarshal(rulesSchema, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(rulesSchemaID, raw); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(rulesSchemaID)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
