package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/gpudoctor/pkg/collectors"
	"github.com/user/gpudoctor/pkg/engine"
)

// checkResult is one self-test check outcome.
type checkResult struct {
	Name   string
	Status string // "OK", "WARN", "FAIL"
	Detail string
}

var selfTestCmd = &cobra.Command{
	Use:   "self-test",
	Short: "Verify tools, permissions and embedded data before a run",
	Long: `Self-test checks that the external tools gpudoctor shells out to are
available, that reports can be written, and that the embedded rule and
remediation catalogs load. Exit codes mirror run: 0 all OK, 1 warnings,
2 failures.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runSelfTest())
	},
}

func runSelfTest() int {
	fmt.Println("gpudoctor Self-Test")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println()

	results := []checkResult{
		checkPlatform(),
		checkNvidiaSmi(),
		checkWritePermissions(),
		checkRuleCatalog(),
		checkRemediations(),
	}
	if runtime.GOOS == "windows" {
		results = append(results, checkTool("powershell", "FAIL", "required for Windows diagnostics"))
	}
	if runtime.GOOS == "linux" {
		results = append(results, checkTool("lspci", "WARN", "install pciutils for GPU enumeration"))
	}

	for _, r := range results {
		fmt.Printf("  [%-4s] %-22s %s\n", r.Status, r.Name, r.Detail)
	}

	ok, warn, fail := tallyChecks(results)
	fmt.Println()
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("  Results: %d OK, %d WARN, %d FAIL\n", ok, warn, fail)
	fmt.Println()

	switch code := selfTestExitCode(warn, fail); code {
	case 2:
		fmt.Println("  Some checks failed. Runs may produce incomplete results.")
		return code
	case 1:
		fmt.Println("  Some optional tools are missing. Some checks may be skipped.")
		return code
	default:
		fmt.Println("  All checks passed. gpudoctor is ready to run.")
		return code
	}
}

func checkPlatform() checkResult {
	detail := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "arm64" {
		return checkResult{Name: "Platform", Status: "WARN", Detail: detail + " (untested architecture)"}
	}
	return checkResult{Name: "Platform", Status: "OK", Detail: detail}
}

func checkNvidiaSmi() checkResult {
	if !collectors.CommandExists("nvidia-smi") {
		return checkResult{Name: "nvidia-smi", Status: "WARN", Detail: "not found in PATH (NVIDIA driver may not be installed)"}
	}
	r := collectors.RunCommand(5, "nvidia-smi", "-L")
	if r.Err != nil {
		return checkResult{Name: "nvidia-smi", Status: "WARN", Detail: "found but failed: " + r.Err.Error()}
	}
	count := len(strings.Split(strings.TrimSpace(r.Stdout), "\n"))
	return checkResult{Name: "nvidia-smi", Status: "OK", Detail: fmt.Sprintf("found, %d GPU(s) reported", count)}
}

func checkWritePermissions() checkResult {
	path := filepath.Join(".", ".gpudoctor-selftest-write")
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		return checkResult{Name: "Write Permissions", Status: "FAIL", Detail: "cannot write to current directory"}
	}
	os.Remove(path)
	return checkResult{Name: "Write Permissions", Status: "OK", Detail: "can write to current directory"}
}

func checkRuleCatalog() checkResult {
	catalog, err := engine.LoadCatalog()
	if err != nil {
		return checkResult{Name: "Rule Catalog", Status: "FAIL", Detail: err.Error()}
	}
	return checkResult{Name: "Rule Catalog", Status: "OK", Detail: fmt.Sprintf("%d rules (version %s)", len(catalog.Rules), catalog.Version)}
}

func checkRemediations() checkResult {
	if _, err := engine.LoadRemediations(); err != nil {
		return checkResult{Name: "Remediations", Status: "FAIL", Detail: err.Error()}
	}
	return checkResult{Name: "Remediations", Status: "OK", Detail: "loaded"}
}

func checkTool(name, missingStatus, hint string) checkResult {
	if !collectors.CommandExists(name) {
		return checkResult{Name: name, Status: missingStatus, Detail: "not found (" + hint + ")"}
	}
	return checkResult{Name: name, Status: "OK", Detail: "available"}
}

func tallyChecks(results []checkResult) (ok, warn, fail int) {
	for _, r := range results {
		switch r.Status {
		case "OK":
			ok++
		case "WARN":
			warn++
		case "FAIL":
			fail++
		}
	}
	return ok, warn, fail
}

func selfTestExitCode(warn, fail int) int {
	switch {
	case fail > 0:
		return 2
	case warn > 0:
		return 1
	default:
		return 0
	}
}

func init() {
	rootCmd.AddCommand(selfTestCmd)
}
