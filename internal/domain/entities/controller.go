package entities

import "github.com/spf13/cobra"

// ControllerBind carries the Cobra command metadata a controller binds to.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is one CLI subcommand entry point.
type Controller interface {
	// GetBind returns the Cobra command metadata for this controller.
	GetBind() ControllerBind

	// Execute runs the controller. A returned error makes the process
	// exit non-zero.
	Execute(cmd *cobra.Command, args []string) error
}
