package cmd

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the tool version stamped into reports and snapshots.
const Version = "0.4.0"

var rootCmd = &cobra.Command{
	Use:   "gpudoctor",
	Short: "Local GPU and driver diagnostics",
	Long: `gpudoctor inspects the local machine for common NVIDIA GPU and driver
problems and explains what it finds in plain language. All checks run
locally; nothing is sent over the network.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("out", "", "Directory for report and snapshot files")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))

	viper.SetEnvPrefix("GPUDOCTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
