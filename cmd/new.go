package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/errors"
)

var (
	newPreset string
	newForce  bool
)

var newCmd = &cobra.Command{
	Use:   "new FILE",
	Short: "Create a configuration document",
	Long: `Creates a JSON configuration document with default values.

The default_preset from the settings file is applied, unless --preset
names another one.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newPreset, "preset", "p", "", "Preset to apply (secure, default, testing)")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !newForce && app.Default.FS.Exists(path) {
		return errors.ValidationError(fmt.Sprintf("%s already exists (use --force to overwrite)", path))
	}

	cfg := app.Default.NewConfiguration()
	if newPreset != "" {
		p, err := parsePreset(newPreset)
		if err != nil {
			return err
		}
		cfg.ApplyPreset(p)
	}

	if err := saveDocument(path, cfg); err != nil {
		return err
	}

	logSuccess("Created %s", path)
	return nil
}
