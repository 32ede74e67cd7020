package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/gpudoctor/pkg/engine"
	"github.com/user/gpudoctor/pkg/report"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate the rule catalog",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rules in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("rules")
		catalog, err := loadCatalog(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		fmt.Printf("%s (catalog version %s)\n\n", catalog.Description, catalog.Version)
		for _, rule := range catalog.Rules {
			modes := strings.Join(rule.Modes, ", ")
			if modes == "" {
				modes = "none"
			}
			platform := rule.Platform
			if platform == "" {
				platform = "all"
			}
			fmt.Printf("%s  %-22s %s\n", report.StyledSeverity(rule.Severity), rule.ID, rule.Title)
			fmt.Printf("        category: %s  modes: %s  platform: %s\n", rule.Category, modes, platform)
		}
		fmt.Printf("\n%d rule(s) loaded.\n", len(catalog.Rules))
	},
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a rule catalog file against the schema",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var catalog *engine.Catalog
		var err error
		source := "built-in catalog"
		if len(args) == 1 {
			source = args[0]
			catalog, err = engine.LoadCatalogFile(args[0])
		} else {
			catalog, err = engine.LoadCatalog()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(3)
		}
		fmt.Printf("OK: %s is valid (%d rules).\n", source, len(catalog.Rules))
	},
}

func init() {
	rulesListCmd.Flags().String("rules", "", "Path to an external rule catalog (defaults to built-in)")
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
	rootCmd.AddCommand(rulesCmd)
}
