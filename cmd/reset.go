package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset FILE",
	Short: "Reset a document to the default configuration",
	Long: `Overwrites every field of a document with its default value,
including the mapped folders.`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := updateDocument(path, func(cfg *config.Configuration) error {
		cfg.Reset()
		return nil
	}); err != nil {
		return err
	}

	logSuccess("Reset %s to defaults", path)
	return nil
}
