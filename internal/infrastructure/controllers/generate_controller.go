package controllers

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate",
		Short: "Generate a manifest from a .gitmodules file",
		Long: `Generate a fresh manifest from a native .gitmodules declaration.

One entry is written per declared submodule, with depth defaulting to 1 and
the pinned commit resolved from the superproject when possible. Any existing
manifest at the output path is overwritten.`,
	}
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("gitmodules", ".gitmodules", "Path to the .gitmodules file to read")
	cmd.Flags().StringP("output", "o", "repositories.yml", "Path of the manifest file to write")
}

// Execute runs the generate command.
func (it *GenerateController) Execute(cmd *cobra.Command, _ []string) error {
	applyVerbosity(cmd)

	gitmodulesPath, _ := cmd.Flags().GetString("gitmodules")
	outputPath, _ := cmd.Flags().GetString("output")

	abs, err := filepath.Abs(gitmodulesPath)
	if err != nil {
		return err
	}

	return it.command.Execute(commands.GenerateOptions{
		Dir:            filepath.Dir(abs),
		GitmodulesPath: abs,
		OutputPath:     outputPath,
	})
}
