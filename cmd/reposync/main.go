package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal"
)

// flagBinder is implemented by controllers that register their own flags.
type flagBinder interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "reposync",
		Short: "Declarative multi-repository synchronization",
		Long: `Keeps a set of Git repositories in sync with a declarative YAML manifest.

Each manifest entry names a destination path, a remote URL and optionally a
branch, a pinned commit and a clone depth. The update command reconciles every
working copy against its manifest entry, removes working copies whose entries
were deleted, and records the synced commits back into the manifest.

Usage examples:
  reposync add https://example.com/repo.git vendor/repo -b main
  reposync update
  reposync update -p vendor/repo --remote
  reposync generate --gitmodules .gitmodules -o repositories.yml`,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("file", "f", "repositories.yml",
		"Path to the repository manifest file")
	cmd.PersistentFlags().String("env-file", "",
		"Path to a dotenv file loaded before manifest interpolation")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if binder, ok := ctrl.(flagBinder); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'reposync': %s", err)
	}
}
