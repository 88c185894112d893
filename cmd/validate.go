package cmd

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a configuration document",
	Long: `Parses and validates a configuration document.

Mapped folders that are missing a host or sandbox path are reported as
warnings; export leaves them out.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadDocument(path)
	if err != nil {
		return err
	}

	skipped := 0
	for i, f := range cfg.MappedFolders {
		if f.Usable() {
			continue
		}
		skipped++
		logWarning("Folder %d (%s) has %s and will be skipped on export", i, orDash(f.HostFolder), folderProblem(f))
	}

	if skipped > 0 {
		logSuccess("%s is valid (%s skipped on export)", path, plural(skipped, "folder"))
		return nil
	}
	logSuccess("%s is valid", path)
	return nil
}
