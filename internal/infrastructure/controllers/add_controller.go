package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// AddController handles the "add" subcommand.
type AddController struct {
	command commands.Add
}

// NewAddController creates a new AddController.
func NewAddController(command commands.Add) *AddController {
	return &AddController{command: command}
}

// GetBind returns the Cobra command metadata for the add controller.
func (it *AddController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "add <url> <path>",
		Short: "Add a new repository to the manifest",
		Long: `Add a new repository to the manifest and clone its working copy.

The resulting pinned commit is written back into the manifest. Fails when
the path is already declared.`,
	}
}

// AddFlags adds the add-specific flags to the given Cobra command.
func (it *AddController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.ExactArgs(2)
	cmd.Flags().StringP("branch", "b", "", "Branch of the repository to add (e.g. main)")
	cmd.Flags().StringP("commit", "c", "", "Commit hash to pin the repository to")
	cmd.Flags().IntP("depth", "d", 1, "Clone depth limiting fetched history")
	cmd.Flags().Bool("git-clean", false, "Strip the .git directory after cloning to save disk space")
}

// Execute runs the add command.
func (it *AddController) Execute(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)

	store, err := openManifest(cmd)
	if err != nil {
		return err
	}

	branch, _ := cmd.Flags().GetString("branch")
	commit, _ := cmd.Flags().GetString("commit")
	depth, _ := cmd.Flags().GetInt("depth")
	gitClean, _ := cmd.Flags().GetBool("git-clean")

	return it.command.Execute(context.Background(), store, commands.AddOptions{
		URL:      args[0],
		Path:     args[1],
		Branch:   branch,
		Commit:   commit,
		Depth:    depth,
		GitClean: gitClean,
	})
}
