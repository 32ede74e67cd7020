package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/gpudoctor/pkg/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Interactive guided diagnostics",
	Long: `Doctor asks a few questions, picks the most relevant diagnostic mode
from the answers, and runs the full pipeline with it.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDoctor(os.Stdin))
	},
}

func runDoctor(in io.Reader) int {
	reader := bufio.NewReader(in)

	fmt.Println("gpudoctor — Interactive Diagnostic Guide")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println()
	fmt.Println("A few questions pick the most relevant checks.")
	fmt.Println()

	fmt.Println("1. What is this machine mainly used for?")
	fmt.Println("   a) Gaming")
	fmt.Println("   b) AI / machine learning / CUDA development")
	fmt.Println("   c) Streaming / content creation")
	fmt.Println("   d) General use / not sure")
	fmt.Print("   > ")
	mode := doctorMode(readAnswer(reader))

	fmt.Println()
	fmt.Println("2. Output format?")
	fmt.Println("   a) Text report only (default)")
	fmt.Println("   b) Text + JSON + Markdown")
	fmt.Print("   > ")
	allFormats := doctorWantsAllFormats(readAnswer(reader))

	fmt.Println()
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("Running diagnostics in %s mode...\n", mode)
	fmt.Println()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warn("could not load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	return executeRun(runOptions{
		mode:    mode,
		timeout: cfg.TimeoutSeconds,
		jsonOut: allFormats,
		mdOut:   allFormats,
		redact:  cfg.Redact,
		outDir:  resolveOutDir(viper.GetString("out"), cfg.OutDir),
	})
}

// doctorMode maps a use-case answer to a diagnostic mode. Anything
// unrecognized falls back to the full mode.
func doctorMode(answer string) string {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "a", "gaming":
		return "gaming"
	case "b", "ai", "ml", "cuda":
		return "ai"
	case "c", "streaming", "creator":
		return "streaming"
	default:
		return "full"
	}
}

func doctorWantsAllFormats(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "b"
}

func readAnswer(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
