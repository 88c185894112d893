package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change wsbctl settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Changes a setting and writes the settings file.

Keys: default_preset, default_sandbox_folder, profiles_dir, editor.
An empty VALUE clears default_preset and editor.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	s := app.Default.Settings
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "File: %s\n\n", app.Default.SettingsPath)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range settings.Keys() {
		value, err := s.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", key, orDash(value))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nRecent files (%d):\n", len(s.RecentFiles))
	for _, path := range s.RecentFiles {
		fmt.Fprintf(out, "  %s\n", path)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := app.Default.Settings.Set(key, value); err != nil {
		return err
	}
	if err := app.Default.SaveSettings(); err != nil {
		return err
	}

	logSuccess("Set %s", key)
	return nil
}
