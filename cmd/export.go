package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/document"
	"github.com/sandboxgui/wsbctl/internal/errors"
	"github.com/sandboxgui/wsbctl/internal/logging"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write the .wsb file for a document",
	Long: `Writes the Windows Sandbox (.wsb) file for a configuration document.

The output defaults to FILE with its extension replaced by .wsb.
Mapped folders without both a host and a sandbox path are left out;
run "wsbctl validate" to list them.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path for the .wsb file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	out := exportOutput
	if out == "" {
		out = document.WSBPath(args[0])
	}

	if filepath.Clean(out) == filepath.Clean(args[0]) {
		return errors.ValidationError(fmt.Sprintf("refusing to overwrite %s with its own export (use -o to choose another file)", args[0]))
	}

	if skipped := len(cfg.MappedFolders) - len(cfg.UsableFolders()); skipped > 0 {
		logging.Debug("skipping unusable mapped folders", "count", skipped)
	}

	if err := document.ExportWSB(app.Default.FS, out, cfg); err != nil {
		return err
	}

	logSuccess("Exported %s", out)
	return nil
}
