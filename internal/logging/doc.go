// Package logging provides logging utilities for wsbctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("loaded document", "path", path, "folders", len(cfg.MappedFolders))
//	logging.Warn("skipping unusable folder", "index", i)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loading %s...", path)
//	logging.UserSuccess("Exported %s", out)
//	logging.UserWarning("Folder %d has no sandbox path and will be skipped", i)
//	logging.UserError("Failed to load document: %v", err)
//
// Output destinations (redirect with SetUserOutput):
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
