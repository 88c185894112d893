package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/config"
)

var presetCmd = &cobra.Command{
	Use:   "preset FILE NAME",
	Short: "Apply a preset to a document",
	Long: `Sets the hardware and redirection toggles of a document to a preset.

Memory, logon command, hostname, dark mode and mapped folders are kept.`,
	Args: cobra.ExactArgs(2),
	RunE: runPreset,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(presetsCmd)
}

func runPreset(cmd *cobra.Command, args []string) error {
	path := args[0]

	p, err := parsePreset(args[1])
	if err != nil {
		return err
	}

	if _, err := updateDocument(path, func(cfg *config.Configuration) error {
		cfg.ApplyPreset(p)
		return nil
	}); err != nil {
		return err
	}

	logSuccess("Applied %s preset to %s", p, path)
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tVGPU\tNETWORK\tAUDIO\tVIDEO\tPRINTER\tCLIPBOARD\tPROTECTED\tDESCRIPTION")
	fmt.Fprintln(w, "------\t----\t-------\t-----\t-----\t-------\t---------\t---------\t-----------")

	for _, p := range config.Presets() {
		c := p.Apply(config.Default())
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p,
			boolStatus(c.VGPUEnabled),
			boolStatus(c.NetworkingEnabled),
			boolStatus(c.AudioInputEnabled),
			boolStatus(c.VideoInputEnabled),
			boolStatus(c.PrinterRedirectionEnabled),
			boolStatus(c.ClipboardRedirectionEnabled),
			boolStatus(c.ProtectedClientEnabled),
			p.Description(),
		)
	}

	return w.Flush()
}
