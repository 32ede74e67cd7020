package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	assert.NotEmpty(t, catalog.Version)
	assert.NotEmpty(t, catalog.Rules)

	for _, rule := range catalog.Rules {
		assert.NotEmpty(t, rule.ID)
		assert.NotEmpty(t, rule.Title)
		assert.NotEmpty(t, rule.Severity)
	}
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalogFileValid(t *testing.T) {
	path := writeCatalogFile(t, `
description: custom rules
version: "1.0.0"
rules:
  - id: low-vram
    title: Low VRAM
    category: gpu
    severity: WARN
    base_confidence: 85
    modes: [gaming]
    description: Not enough VRAM.
`)
	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom rules", catalog.Description)
	require.Len(t, catalog.Rules, 1)
	assert.Equal(t, "low-vram", catalog.Rules[0].ID)
	assert.Equal(t, SeverityWarn, catalog.Rules[0].Severity)
}

func TestLoadCatalogFileMissing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadCatalogFileRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not yaml", "\t{{{"},
		{"missing version", `
description: d
rules: []
`},
		{"rule missing severity", `
description: d
version: "1"
rules:
  - id: low-vram
    title: Low VRAM
    category: gpu
    modes: [gaming]
    description: x
`},
		{"empty modes list", `
description: d
version: "1"
rules:
  - id: low-vram
    title: Low VRAM
    category: gpu
    severity: WARN
    modes: []
    description: x
`},
		{"duplicate rule id", `
description: d
version: "1"
rules:
  - id: low-vram
    title: Low VRAM
    category: gpu
    severity: WARN
    modes: [gaming]
    description: x
  - id: low-vram
    title: Low VRAM again
    category: gpu
    severity: WARN
    modes: [ai]
    description: x
`},
		{"confidence out of range", `
description: d
version: "1"
rules:
  - id: low-vram
    title: Low VRAM
    category: gpu
    severity: WARN
    base_confidence: 150
    modes: [gaming]
    description: x
`},
		{"unknown rule field", `
description: d
version: "1"
rules:
  - id: low-vram
    title: Low VRAM
    category: gpu
    severity: WARN
    modes: [gaming]
    description: x
    frobnicate: true
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalogFile(t, tc.content)
			_, err := LoadCatalogFile(path)
			require.Error(t, err)

			// All load failures surface as a LoadError naming the source.
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Source)
		})
	}
}

func TestRuleAppliesTo(t *testing.T) {
	rule := Rule{Modes: []string{"gaming", "ai"}, Platform: "linux"}

	assert.True(t, rule.AppliesTo(RunContext{Mode: "gaming", Platform: "linux"}))
	assert.True(t, rule.AppliesTo(RunContext{Mode: "ai", Platform: "linux"}))
	assert.False(t, rule.AppliesTo(RunContext{Mode: "full", Platform: "linux"}))
	assert.False(t, rule.AppliesTo(RunContext{Mode: "gaming", Platform: "windows"}))
	assert.False(t, rule.AppliesTo(RunContext{Mode: "GAMING", Platform: "linux"}))

	anyPlatform := Rule{Modes: []string{"full"}}
	assert.True(t, anyPlatform.AppliesTo(RunContext{Mode: "full", Platform: "darwin"}))

	noModes := Rule{Platform: "linux"}
	assert.False(t, noModes.AppliesTo(RunContext{Mode: "full", Platform: "linux"}))
}
