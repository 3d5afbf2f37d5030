package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/lynis-dash/pkg/config"
	"github.com/user/lynis-dash/pkg/console"
)

var rootCmd = &cobra.Command{
	Use:   "lynis-dash",
	Short: "Lynis audit report dashboard",
	Long: `lynis-dash reads the report file written by a Lynis system audit and
shows the host's hardening index, warnings, suggestions and system details.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		console.SetDebug(DebugMode)
	},
}

var (
	DebugMode  bool
	ConfigPath string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadConfig honors --config, falling back to ~/.lynis-dash/config.yaml
func loadConfig() (*config.Config, error) {
	if ConfigPath != "" {
		return config.LoadConfigFrom(ConfigPath)
	}
	return config.LoadConfig()
}

func saveConfig(cfg *config.Config) error {
	if ConfigPath != "" {
		return config.SaveConfigTo(cfg, ConfigPath)
	}
	return config.SaveConfig(cfg)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&ConfigPath, "config", "", "Config file (default ~/.lynis-dash/config.yaml)")
}
