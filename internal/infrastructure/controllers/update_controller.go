package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// UpdateController handles the "update" subcommand.
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update",
		Short: "Update working copies to their declared state",
		Long: `Update already declared repositories, cloning any that are missing.

Without -p every manifest entry is processed in declaration order; failures
on one entry are logged and the batch continues. Entries removed from the
manifest since the previous run have their working copies pruned.`,
	}
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("path", "p", "", "Only update the repository at this manifest path")
	cmd.Flags().BoolP("remote", "r", false, "Reset to origin/<branch> instead of the stored commit")
	cmd.Flags().Bool("git-clean", false, "Strip the .git directory after updating to save disk space")
	cmd.Flags().Bool("ignore-local-changes", false, "Discard local changes without asking")
}

// Execute runs the update command.
func (it *UpdateController) Execute(cmd *cobra.Command, _ []string) error {
	applyVerbosity(cmd)

	store, err := openManifest(cmd)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("path")
	remote, _ := cmd.Flags().GetBool("remote")
	gitClean, _ := cmd.Flags().GetBool("git-clean")
	ignoreLocal, _ := cmd.Flags().GetBool("ignore-local-changes")

	return it.command.Execute(context.Background(), store, commands.UpdateOptions{
		Path:               path,
		Remote:             remote,
		GitClean:           gitClean,
		IgnoreLocalChanges: ignoreLocal,
	})
}
