// Package tui provides terminal user interface components for wsbctl.
//
// This package uses the Bubble Tea framework for the interactive form
// editor and the document picker.
//
// # Form Editor
//
// The form edits one Configuration in memory. Nothing is written until
// the caller receives the result:
//
//	cfg, saved, err := tui.RunForm(cfg, tui.FormOptions{Title: path})
//	if saved {
//	    // write cfg back
//	}
//
// Keys: space toggles a checkbox or a folder's read-only flag, +/- steps
// memory, enter edits a text field or folder, 1/2/3 apply the secure,
// default and testing presets, r resets, p shows the .wsb preview,
// ctrl+s saves, q quits (twice when there are unsaved changes).
//
// # Document Picker
//
// The picker lists recent files and profiles grouped under headers:
//
//	result, err := tui.RunPicker(groups)
//	switch result.Action {
//	case tui.ActionOpen:
//	    // open result.Entry
//	case tui.ActionNew:
//	    // start from defaults
//	case tui.ActionQuit:
//	    // exit
//	}
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
