package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandboxgui/wsbctl/internal/app"
	"github.com/sandboxgui/wsbctl/internal/errors"
)

var profileForce bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named configuration profiles",
	Long: `Profiles are configuration documents kept by name in the profiles
directory (profiles_dir in the settings file).`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileSaveCmd = &cobra.Command{
	Use:   "save NAME FILE",
	Short: "Save a document as a profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileSave,
}

var profileLoadCmd = &cobra.Command{
	Use:   "load NAME FILE",
	Short: "Write a profile to a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileLoad,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	profileSaveCmd.Flags().BoolVarP(&profileForce, "force", "f", false, "Overwrite an existing profile")
	profileLoadCmd.Flags().BoolVarP(&profileForce, "force", "f", false, "Overwrite an existing file")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileLoadCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	names, err := app.Default.Profiles().List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		logInfo("No profiles found. Save one with: wsbctl profile save <name> <file>")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runProfileSave(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	store := app.Default.Profiles()

	cfg, err := loadDocument(path)
	if err != nil {
		return err
	}

	if !profileForce && store.Exists(name) {
		return errors.ValidationError(fmt.Sprintf("profile %s already exists (use --force to overwrite)", name))
	}

	if err := store.Save(name, cfg); err != nil {
		return err
	}

	logSuccess("Saved profile %s", name)
	return nil
}

func runProfileLoad(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	cfg, err := app.Default.Profiles().Load(name)
	if err != nil {
		return err
	}

	if !profileForce && app.Default.FS.Exists(path) {
		return errors.ValidationError(fmt.Sprintf("%s already exists (use --force to overwrite)", path))
	}

	if err := saveDocument(path, cfg); err != nil {
		return err
	}

	logSuccess("Wrote profile %s to %s", name, path)
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := app.Default.Profiles().Delete(name); err != nil {
		return err
	}

	logSuccess("Deleted profile %s", name)
	return nil
}
