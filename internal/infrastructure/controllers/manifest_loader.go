package controllers

import (
	"path/filepath"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/repositories"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories/manifest"
)

// openManifest resolves the persistent --file and --env-file flags into a
// loaded manifest store. A missing or unparsable manifest is fatal to the
// invocation: there is nothing to reconcile without it.
func openManifest(cmd *cobra.Command) (repositories.ManifestRepository, error) {
	file, _ := cmd.Flags().GetString("file")
	envFile, _ := cmd.Flags().GetString("env-file")

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			logger.Warnf("Failed to load env file %q: %v", envFile, err)
		}
	} else {
		// best-effort .env in the working directory
		_ = godotenv.Load()
	}

	path, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	store := manifest.NewYAMLRepository(path)
	if loadErr := store.Load(); loadErr != nil {
		return nil, loadErr
	}
	return store, nil
}

// applyVerbosity switches to debug-level logging when -v is set.
func applyVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}
