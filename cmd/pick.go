package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/logging"
	"github.com/sandboxgui/wsbctl/internal/tui"
)

// untitledName is the file created when "new" is chosen in the picker.
const untitledName = "sandbox"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent documents and profiles",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	groups, err := documentGroups()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), tui.SimplePicker(groups))
	return err
}

// documentGroups collects the recent files that still exist and the saved
// profiles.
func documentGroups() ([]tui.PickerGroup, error) {
	fsys := app.Default.FS

	var recent []tui.PickerEntry
	for _, path := range app.Default.Settings.RecentFiles {
		if !fsys.Exists(path) {
			logging.Debug("skipping missing recent file", "path", path)
			continue
		}
		recent = append(recent, tui.PickerEntry{Path: path})
	}

	store := app.Default.Profiles()
	names, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	var profiles []tui.PickerEntry
	for _, name := range names {
		path, err := store.Path(name)
		if err != nil {
			continue
		}
		profiles = append(profiles, tui.PickerEntry{Name: name, Path: path, Profile: true})
	}

	return []tui.PickerGroup{
		{Label: "Recent files", Entries: recent},
		{Label: "Profiles", Entries: profiles},
	}, nil
}

// pickDocument runs the interactive picker. ok is false when the user quit.
func pickDocument() (entry tui.PickerEntry, ok bool, err error) {
	if !hasTerminal() {
		return tui.PickerEntry{}, false, errors.ValidationError("no terminal available: pass a FILE or run wsbctl list")
	}

	groups, err := documentGroups()
	if err != nil {
		return tui.PickerEntry{}, false, err
	}

	logging.Debug("picker mode started")

	result, err := tui.RunPicker(groups)
	if err != nil {
		return tui.PickerEntry{}, false, fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionOpen:
		return result.Entry, true, nil
	case tui.ActionNew:
		return tui.PickerEntry{Path: untitledPath()}, true, nil
	}
	return tui.PickerEntry{}, false, nil
}

// untitledPath returns the first sandbox[-N].json in the working directory
// that does not exist yet.
func untitledPath() string {
	path := untitledName + ".json"
	for i := 2; app.Default.FS.Exists(path); i++ {
		path = fmt.Sprintf("%s-%d.json", untitledName, i)
	}
	return path
}

func hasTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
