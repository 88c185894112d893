package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/errors"
)

var (
	folderSandbox   string
	folderReadWrite bool
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Manage the mapped folders of a document",
}

var folderListCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List mapped folders",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolderList,
}

var folderAddCmd = &cobra.Command{
	Use:   "add FILE HOST",
	Short: "Map a host folder into the sandbox",
	Long: `Appends a mapped folder. The folder is read-only unless --read-write
is given. The sandbox path defaults to default_sandbox_folder from the
settings file.`,
	Args: cobra.ExactArgs(2),
	RunE: runFolderAdd,
}

var folderRemoveCmd = &cobra.Command{
	Use:   "remove FILE INDEX",
	Short: "Remove a mapped folder by index",
	Args:  cobra.ExactArgs(2),
	RunE:  runFolderRemove,
}

func init() {
	folderAddCmd.Flags().StringVarP(&folderSandbox, "sandbox", "s", "", "Path inside the sandbox")
	folderAddCmd.Flags().BoolVar(&folderReadWrite, "read-write", false, "Allow the sandbox to write to the folder")

	folderCmd.AddCommand(folderListCmd)
	folderCmd.AddCommand(folderAddCmd)
	folderCmd.AddCommand(folderRemoveCmd)
	rootCmd.AddCommand(folderCmd)
}

func runFolderList(cmd *cobra.Command, args []string) error {
	cfg, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if len(cfg.MappedFolders) == 0 {
		logInfo("No mapped folders. Add one with: wsbctl folder add %s <host-folder>", args[0])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tHOST\tSANDBOX\tMODE\tEXPORT")
	fmt.Fprintln(w, "-----\t----\t-------\t----\t------")

	for i, f := range cfg.MappedFolders {
		export := boolStatus(true)
		if !f.Usable() {
			export = boolStatus(false) + " " + folderProblem(f)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, orDash(f.HostFolder), orDash(f.SandboxFolder), folderMode(f), export)
	}

	return w.Flush()
}

func runFolderAdd(cmd *cobra.Command, args []string) error {
	path, host := args[0], args[1]

	f := app.Default.NewMappedFolder(host)
	if folderSandbox != "" {
		f.SandboxFolder = folderSandbox
	}
	f.ReadOnly = !folderReadWrite

	cfg, err := updateDocument(path, func(cfg *config.Configuration) error {
		cfg.AddMappedFolder(f)
		return nil
	})
	if err != nil {
		return err
	}

	logSuccess("Mapped %s to %s (%s) as folder %d", f.HostFolder, orDash(f.SandboxFolder), folderMode(f), len(cfg.MappedFolders)-1)
	return nil
}

func runFolderRemove(cmd *cobra.Command, args []string) error {
	path := args[0]

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.ValidationError(fmt.Sprintf("invalid folder index %q", args[1]))
	}

	var removed config.MappedFolder
	if _, err := updateDocument(path, func(cfg *config.Configuration) error {
		if index >= 0 && index < len(cfg.MappedFolders) {
			removed = cfg.MappedFolders[index]
		}
		return cfg.RemoveMappedFolder(index)
	}); err != nil {
		return err
	}

	logSuccess("Removed folder %d (%s)", index, orDash(removed.HostFolder))
	return nil
}
