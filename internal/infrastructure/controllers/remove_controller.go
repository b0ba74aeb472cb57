package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// RemoveController handles the "rm" subcommand.
type RemoveController struct {
	command commands.Remove
}

// NewRemoveController creates a new RemoveController.
func NewRemoveController(command commands.Remove) *RemoveController {
	return &RemoveController{command: command}
}

// GetBind returns the Cobra command metadata for the remove controller.
func (it *RemoveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rm <path>",
		Short: "Remove a repository from the manifest",
		Long: `Remove a repository from the manifest and delete its working copy.

Fails when the path is not declared in the manifest.`,
	}
}

// AddFlags adds the rm-specific flags to the given Cobra command.
func (it *RemoveController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.ExactArgs(1)
}

// Execute runs the rm command.
func (it *RemoveController) Execute(cmd *cobra.Command, args []string) error {
	applyVerbosity(cmd)

	store, err := openManifest(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(context.Background(), store, commands.RemoveOptions{
		Path: args[0],
	})
}
