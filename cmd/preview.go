package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/generator"
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Print the .wsb export of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), generator.GenerateWSB(cfg))
	return err
}
