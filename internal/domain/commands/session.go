package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/repositories"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories/manifest"
)

// pruneRemoved deletes working copies for entries recorded in the previous
// run's shadow manifest but no longer declared in the current one. Failures
// are logged and never abort the run.
func pruneRemoved(
	store repositories.ManifestRepository,
	workingCopies repositories.WorkingCopyRepository,
) {
	shadow := manifest.LoadShadow(store.Path())
	for _, repo := range manifest.Removed(shadow.All(), store.All()) {
		logger.Infof("Repository %q was removed from the manifest; pruning its working copy", repo.Path)
		if err := workingCopies.Remove(repo, store.Dir()); err != nil {
			logger.Errorf("Failed to prune %q: %v", repo.Path, err)
		}
	}
}

// persistShadow writes the current manifest contents into the hidden shadow
// file, establishing the baseline for the next run's removal diff.
func persistShadow(store repositories.ManifestRepository) {
	if err := store.SaveTo(manifest.ShadowPath(store.Path())); err != nil {
		logger.Errorf("Failed to persist shadow manifest: %v", err)
	}
}
