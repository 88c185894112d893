package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/errors"
)

const (
	keyMemoryMB      = "memory_mb"
	keyLogonCommand  = "logon_command"
	keyHostnameValue = "hostname_value"
)

var setCmd = &cobra.Command{
	Use:   "set FILE KEY=VALUE...",
	Short: "Set fields of a document",
	Long: `Sets fields of a document by their JSON key.

Keys:
  memory_mb          Memory in MB (512-32768)
  logon_command      Command run at logon (empty to clear)
  hostname_value     Hostname, at most 15 characters
  vgpu_enabled, networking_enabled, audio_input_enabled,
  video_input_enabled, protected_client_enabled,
  printer_redirection_enabled, clipboard_redirection_enabled,
  hostname_enabled, force_dark_mode
                     true or false

All assignments are applied together; nothing is written if one fails.`,
	Example: `  wsbctl set sandbox.json memory_mb=8192 networking_enabled=false
  wsbctl set sandbox.json hostname_enabled=true hostname_value=Lab`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := updateDocument(path, func(cfg *config.Configuration) error {
		for _, arg := range args[1:] {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return errors.ValidationError(fmt.Sprintf("expected KEY=VALUE, got %q", arg))
			}
			if err := setField(cfg, strings.TrimSpace(key), value); err != nil {
				return err
			}
		}
		return cfg.Validate()
	}); err != nil {
		return err
	}

	logSuccess("Updated %s", path)
	return nil
}

func setField(cfg *config.Configuration, key, value string) error {
	switch key {
	case keyMemoryMB:
		mb, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("%s must be a whole number, got %q", key, value))
		}
		return cfg.SetMemoryMB(mb)
	case keyLogonCommand:
		cfg.SetLogonCommand(value)
		return nil
	case keyHostnameValue:
		return cfg.SetHostname(cfg.HostnameEnabled, value)
	}

	flag, err := config.ParseFlag(key)
	if err != nil {
		return errors.ValidationError(err.Error())
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return errors.ValidationError(fmt.Sprintf("%s must be true or false, got %q", key, value))
	}
	cfg.SetFlag(flag, b)
	return nil
}
