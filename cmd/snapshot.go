package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/gpudoctor/pkg/collectors"
	"github.com/user/gpudoctor/pkg/config"
	"github.com/user/gpudoctor/pkg/engine"
	"github.com/user/gpudoctor/pkg/redact"
	"github.com/user/gpudoctor/pkg/report"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save the current system facts for later comparison",
	Long: `Snapshot records the current hardware and driver facts to a JSON
file. Snapshots contain facts only, never findings, so two snapshots
taken before and after a driver change can be compared cleanly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		timeout, _ := cmd.Flags().GetInt("timeout")
		if timeout <= 0 {
			timeout = cfg.TimeoutSeconds
		}
		outDir := resolveOutDir(viper.GetString("out"), cfg.OutDir)

		facts, notes := collectors.Collect(timeout)
		for _, n := range notes {
			log.Debug("collector note", "collector", n.Collector, "msg", n.Message)
		}

		rc := engine.NewRunContext(cfg.Mode)
		snap := engine.NewSnapshot(facts, rc, Version)
		path, err := engine.WriteSnapshot(snap, outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		fmt.Printf("Snapshot saved: %s\n", redact.New(cfg.Redact).RedactPath(path))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <snapshot-a> <snapshot-b>",
	Short: "Compare two saved snapshots",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := engine.LoadSnapshot(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}
		b, err := engine.LoadSnapshot(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		if b.Timestamp.Before(a.Timestamp) {
			log.Warn("snapshot B is older than snapshot A",
				"a", a.Timestamp.Format(time.RFC3339),
				"b", b.Timestamp.Format(time.RFC3339))
		}

		diffs := engine.CompareSnapshots(a, b)
		markdown, _ := cmd.Flags().GetBool("md")
		fmt.Print(report.FormatComparison(a, b, diffs, markdown))
	},
}

func init() {
	snapshotCmd.Flags().Int("timeout", 0, "Per-command timeout in seconds")
	compareCmd.Flags().Bool("md", false, "Render the comparison as Markdown")
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(compareCmd)
}
