package manifest

import (
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// ShadowPath returns the hidden sibling file holding the previous-run copy
// of the given manifest.
func ShadowPath(manifestPath string) string {
	dir := filepath.Dir(manifestPath)
	return filepath.Join(dir, "."+filepath.Base(manifestPath))
}

// LoadShadow opens the shadow manifest next to the given manifest path.
// Loading is best-effort: a missing or corrupt shadow file yields an empty
// store, which is the first-run case.
func LoadShadow(manifestPath string) *YAMLRepository {
	shadow := NewYAMLRepository(ShadowPath(manifestPath))
	if err := shadow.Load(); err != nil {
		logger.Debugf("No usable shadow manifest at %q: %v", shadow.Path(), err)
	}
	return shadow
}

// Removed returns previous-run descriptors whose path is absent from the
// current manifest. These are the entries deleted between runs, whose
// working copies should be pruned.
func Removed(previous, current []entities.Repository) []entities.Repository {
	declared := make(map[string]struct{}, len(current))
	for _, repo := range current {
		declared[repo.Path] = struct{}{}
	}

	var removed []entities.Repository
	for _, repo := range previous {
		if _, ok := declared[repo.Path]; !ok {
			removed = append(removed, repo)
		}
	}
	return removed
}
