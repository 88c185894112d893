package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/document"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/logging"
	"github.com/sandboxgui/wsbctl/internal/tui"
)

var editRaw bool

var editCmd = &cobra.Command{
	Use:   "edit [FILE]",
	Short: "Edit a document interactively",
	Long: `Opens a configuration document in the form editor.

Without FILE, a picker lists recent documents and saved profiles.
A FILE that does not exist yet starts from the default configuration.

Form keys:
  ↑/↓ j/k   Move between fields
  space     Toggle a setting
  +/-       Adjust memory
  enter     Edit a value or folder
  1/2/3     Apply the secure/default/testing preset
  r         Reset to defaults
  p         Show or hide the .wsb preview
  ctrl+s    Save
  q/esc     Quit

With --raw the JSON document is opened in $VISUAL/$EDITOR instead and
validated after the editor exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&editRaw, "raw", false, "Edit the JSON in a text editor")
	rootCmd.AddCommand(editCmd)
}

// editTarget is either a document file or a named profile.
type editTarget struct {
	path    string
	profile string
}

func (t editTarget) label() string {
	if t.profile != "" {
		return "profile " + t.profile
	}
	return t.path
}

// load returns the target's configuration and whether it is new.
func (t editTarget) load() (config.Configuration, bool, error) {
	if t.profile != "" {
		cfg, err := app.Default.Profiles().Load(t.profile)
		return cfg, false, err
	}
	if !app.Default.FS.Exists(t.path) {
		return app.Default.NewConfiguration(), true, nil
	}
	cfg, err := loadDocument(t.path)
	return cfg, false, err
}

func (t editTarget) save(cfg config.Configuration) error {
	if t.profile != "" {
		return app.Default.Profiles().Save(t.profile, cfg)
	}
	return saveDocument(t.path, cfg)
}

func runEdit(cmd *cobra.Command, args []string) error {
	var target editTarget

	if len(args) == 1 {
		target.path = args[0]
	} else {
		entry, ok, err := pickDocument()
		if err != nil || !ok {
			return err
		}
		if entry.Profile {
			target.profile = entry.Name
		} else {
			target.path = entry.Path
		}
	}

	return editDocument(cmd.Context(), target)
}

func editDocument(ctx context.Context, target editTarget) error {
	cfg, isNew, err := target.load()
	if err != nil {
		return err
	}

	var (
		edited config.Configuration
		saved  bool
	)
	if editRaw {
		name := target.path
		if target.profile != "" {
			name = target.profile + document.JSONExt
		}
		edited, err = app.Default.Editor().Edit(ctx, name, cfg)
		if err != nil {
			return err
		}
		saved = isNew || !edited.Equal(cfg)
	} else {
		if !hasTerminal() {
			return errors.ValidationError("the form editor needs a terminal: use --raw, or wsbctl set")
		}
		edited, saved, err = tui.RunForm(cfg, tui.FormOptions{
			Title:         target.label(),
			SandboxFolder: app.Default.Settings.DefaultSandboxFolder,
		})
		if err != nil {
			return err
		}
	}

	if !saved {
		logInfo("No changes saved")
		return nil
	}

	logging.Debug("saving edited document", "target", target.label())
	if err := target.save(edited); err != nil {
		return err
	}

	logSuccess("Saved %s", target.label())
	return nil
}
