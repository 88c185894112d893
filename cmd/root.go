package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/logging"
)

var (
	verbose      bool
	jsonOutput   bool
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "wsbctl",
	Short: "Windows Sandbox configuration editor",
	Long: `wsbctl edits Windows Sandbox configurations.

Configurations are stored as JSON documents and exported to the .wsb
format read by Windows Sandbox:
  - Hardware and redirection toggles with secure/default/testing presets
  - Memory, logon command and hostname
  - Mapped host folders
  - Named profiles and an interactive form editor`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		if settingsPath != "" && settingsPath != app.Default.SettingsPath {
			app.Default.SettingsPath = settingsPath
			app.Default.Settings = nil
		}
		return app.Default.Init()
	},
}

// Execute runs the root command and reports any error to the user.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Settings file (default: user config dir)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
