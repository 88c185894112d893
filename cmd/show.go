package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/config"
)

var (
	showHeadingStyle = lipgloss.NewStyle().Bold(true)
	showMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Show a summary of a configuration document",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), args[0], cfg)
	return nil
}

func printSummary(w io.Writer, path string, cfg config.Configuration) {
	preset := "custom"
	if p, ok := matchingPreset(cfg); ok {
		preset = p.String()
	}

	fmt.Fprintf(w, "Document: %s\n", path)
	fmt.Fprintf(w, "Preset: %s\n", preset)

	fmt.Fprintln(w)
	fmt.Fprintln(w, showHeadingStyle.Render("Sandbox"))
	fmt.Fprintf(w, "  vGPU: %s\n", boolStatus(cfg.VGPUEnabled))
	fmt.Fprintf(w, "  Networking: %s\n", boolStatus(cfg.NetworkingEnabled))
	fmt.Fprintf(w, "  Audio input: %s\n", boolStatus(cfg.AudioInputEnabled))
	fmt.Fprintf(w, "  Video input: %s\n", boolStatus(cfg.VideoInputEnabled))
	fmt.Fprintf(w, "  Protected client: %s\n", boolStatus(cfg.ProtectedClientEnabled))
	fmt.Fprintf(w, "  Printer redirection: %s\n", boolStatus(cfg.PrinterRedirectionEnabled))
	fmt.Fprintf(w, "  Clipboard redirection: %s\n", boolStatus(cfg.ClipboardRedirectionEnabled))
	fmt.Fprintf(w, "  Memory: %d MB\n", cfg.MemoryMB)

	logon := cfg.TrimmedLogonCommand()
	if logon == "" {
		logon = showMutedStyle.Render("(none)")
	}
	fmt.Fprintf(w, "  Logon command: %s\n", logon)

	hostname := cfg.EffectiveHostname()
	switch {
	case !cfg.HostnameEnabled:
		hostname = showMutedStyle.Render("(disabled)")
	case hostname == "":
		hostname = showMutedStyle.Render("(empty)")
	}
	fmt.Fprintf(w, "  Hostname: %s\n", hostname)

	fmt.Fprintln(w)
	fmt.Fprintln(w, showHeadingStyle.Render("Appearance"))
	fmt.Fprintf(w, "  Dark mode: %s\n", boolStatus(cfg.ForceDarkMode))

	fmt.Fprintln(w)
	fmt.Fprintln(w, showHeadingStyle.Render(fmt.Sprintf("Mapped folders (%d)", len(cfg.MappedFolders))))
	if len(cfg.MappedFolders) == 0 {
		fmt.Fprintf(w, "  %s\n", showMutedStyle.Render("(none)"))
	}
	for i, f := range cfg.MappedFolders {
		fmt.Fprintf(w, "  [%d] %s -> %s (%s)", i, orDash(f.HostFolder), orDash(f.SandboxFolder), folderMode(f))
		if !f.Usable() {
			fmt.Fprintf(w, " ⚠ skipped on export: %s", folderProblem(f))
		}
		fmt.Fprintln(w)
	}
}
