package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/gpudoctor/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted defaults (mode, output directory, timeouts)",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(3)
		}
		path, _ := config.GetConfigPath()
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("  mode:            %s\n", cfg.Mode)
		fmt.Printf("  out_dir:         %s\n", cfg.OutDir)
		fmt.Printf("  timeout_seconds: %d\n", cfg.TimeoutSeconds)
		fmt.Printf("  redact:          %t\n", cfg.Redact)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a persisted default. Valid keys:

  mode             default diagnostic mode (gaming, ai, creator, streaming, full)
  out_dir          directory for reports and snapshots
  timeout_seconds  per-command timeout
  redact           redact hostname, username and IPs (true/false)`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key, value := args[0], args[1]

		if key == "mode" && !validModes[value] {
			fmt.Fprintf(os.Stderr, "Error: invalid mode %q (valid: gaming, ai, creator, streaming, full)\n", value)
			os.Exit(3)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(3)
		}
		if err := cfg.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		if err := config.SaveConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(3)
		}
		fmt.Printf("Saved: %s = %s\n", key, value)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
