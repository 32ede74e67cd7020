package cmd

import (
	"fmt"
	"os"
	"path/filepath"
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

var validModes = map[string]bool{
	"gaming":    true,
	"ai":        true,
	"creator":   true,
	"streaming": true,
	"full":      true,
}

// runOptions are the resolved inputs for one diagnostic run, after flags,
// environment and the persisted config have been merged.
type runOptions struct {
	mode      string
	timeout   int
	rulesPath string
	jsonOut   bool
	mdOut     bool
	redact    bool
	outDir    string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Collect facts, evaluate rules and write a diagnostic report",
	Long: `Run inspects the local machine (nvidia-smi, lspci, OS facilities),
evaluates the rule catalog against what it found, and writes a report.

Exit codes: 0 no issues, 1 warnings found, 2 critical issues found,
3 usage or catalog error.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDiagnostics(cmd))
	},
}

func runDiagnostics(cmd *cobra.Command) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warn("could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	mode, _ := cmd.Flags().GetString("mode")
	if mode == "" {
		mode = cfg.Mode
	}
	if !validModes[mode] {
		fmt.Fprintf(os.Stderr, "Error: invalid mode %q (valid: gaming, ai, creator, streaming, full)\n", mode)
		return 3
	}

	timeout, _ := cmd.Flags().GetInt("timeout")
	if timeout <= 0 {
		timeout = cfg.TimeoutSeconds
	}

	rulesPath, _ := cmd.Flags().GetString("rules")
	jsonOut, _ := cmd.Flags().GetBool("json")
	mdOut, _ := cmd.Flags().GetBool("md")
	noRedact, _ := cmd.Flags().GetBool("no-redact")

	return executeRun(runOptions{
		mode:      mode,
		timeout:   timeout,
		rulesPath: rulesPath,
		jsonOut:   jsonOut,
		mdOut:     mdOut,
		redact:    cfg.Redact && !noRedact,
		outDir:    resolveOutDir(viper.GetString("out"), cfg.OutDir),
	})
}

// executeRun is the shared pipeline behind `run` and `doctor`: collect,
// evaluate, enrich, summarize, redact, write.
func executeRun(opts runOptions) int {
	start := time.Now()

	catalog, err := loadCatalog(opts.rulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}

	remediations, err := engine.LoadRemediations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}

	rc := engine.NewRunContext(opts.mode)
	log.Debug("collecting system facts", "mode", rc.Mode, "platform", rc.Platform)
	facts, notes := collectors.Collect(opts.timeout)

	findings := engine.Evaluate(facts, catalog, rc)
	remediations.Enrich(findings)
	summary := engine.Summarize(facts, findings, rc, Version, start)

	r := redact.New(opts.redact)
	facts.System.Hostname = r.RedactHostname(facts.System.Hostname)

	rep := &report.Report{
		Metadata: report.Metadata{
			ToolVersion:    Version,
			Timestamp:      start,
			Mode:           rc.Mode,
			Platform:       rc.Platform,
			RuntimeSeconds: time.Since(start).Seconds(),
			Redacted:       opts.redact,
		},
		Facts:     facts,
		Findings:  findings,
		TopIssues: summary.TopIssues,
		NextSteps: summary.NextSteps,
		Summary:   summary.Block,
		Notes:     notes,
	}

	text := r.Redact(report.GenerateText(rep))
	fmt.Println(text)

	stamp := start.Format("20060102-150405")
	var written []string
	if path, err := writeReport(opts.outDir, "gpudoctor-report-"+stamp+".txt", text); err != nil {
		log.Warn("could not write text report", "err", err)
	} else {
		written = append(written, path)
	}

	if opts.jsonOut {
		data, err := report.GenerateJSON(rep)
		if err != nil {
			log.Warn("could not generate JSON report", "err", err)
		} else if path, err := writeReport(opts.outDir, "gpudoctor-report-"+stamp+".json", r.Redact(data)); err != nil {
			log.Warn("could not write JSON report", "err", err)
		} else {
			written = append(written, path)
		}
	}

	if opts.mdOut {
		md := r.Redact(report.GenerateMarkdown(rep))
		if path, err := writeReport(opts.outDir, "gpudoctor-report-"+stamp+".md", md); err != nil {
			log.Warn("could not write Markdown report", "err", err)
		} else {
			written = append(written, path)
		}
	}

	for _, path := range written {
		fmt.Printf("Report written: %s\n", r.RedactPath(path))
	}

	crit, warn, _ := engine.CountBySeverity(findings)
	switch {
	case crit > 0:
		return 2
	case warn > 0:
		return 1
	default:
		return 0
	}
}

func loadCatalog(path string) (*engine.Catalog, error) {
	if path == "" {
		return engine.LoadCatalog()
	}
	return engine.LoadCatalogFile(path)
}

// resolveOutDir picks the output directory: flag over config, falling back to
// the current directory so an empty value never reaches os.MkdirAll.
func resolveOutDir(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if cfgVal != "" {
		return cfgVal
	}
	return "."
}

func writeReport(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

func init() {
	runCmd.Flags().StringP("mode", "m", "", "Diagnostic mode: gaming, ai, creator, streaming, full")
	runCmd.Flags().String("rules", "", "Path to an external rule catalog (defaults to built-in)")
	runCmd.Flags().Int("timeout", 0, "Per-command timeout in seconds")
	runCmd.Flags().Bool("json", false, "Also write a JSON report")
	runCmd.Flags().Bool("md", false, "Also write a Markdown report")
	runCmd.Flags().Bool("no-redact", false, "Disable redaction of hostname, username and IPs")
	rootCmd.AddCommand(runCmd)
}
