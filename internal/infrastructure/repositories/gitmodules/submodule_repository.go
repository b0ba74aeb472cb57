// Package gitmodules reads native .gitmodules declaration files through
// go-git and best-effort resolves each submodule's pinned commit from the
// surrounding superproject.
package gitmodules

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// Reader implements SubmoduleRepository on top of go-git.
type Reader struct{}

var _ repositories.SubmoduleRepository = (*Reader)(nil)

// NewReader creates a gitmodules reader.
func NewReader() *Reader {
	return &Reader{}
}

// List parses the given .gitmodules file and returns one entry per declared
// submodule. Pinned commits are resolved from the superproject at dir when
// it is a git repository; resolution failures degrade to an empty commit,
// never an error.
func (it *Reader) List(dir, gitmodulesPath string) ([]entities.Submodule, error) {
	data, err := os.ReadFile(gitmodulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", gitmodulesPath, err)
	}

	modules := config.NewModules()
	if unmarshalErr := modules.Unmarshal(data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", gitmodulesPath, unmarshalErr)
	}

	pins := it.resolvePins(dir)

	submodules := make([]entities.Submodule, 0, len(modules.Submodules))
	for _, sub := range modules.Submodules {
		submodules = append(submodules, entities.Submodule{
			Path:   sub.Path,
			URL:    sub.URL,
			Branch: sub.Branch,
			Commit: pins[sub.Path],
		})
	}
	return submodules, nil
}

// resolvePins maps submodule path to the commit the superproject records
// for it. Best-effort: any failure yields an empty map.
func (it *Reader) resolvePins(dir string) map[string]string {
	pins := map[string]string{}

	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		logger.Debugf("Not resolving submodule pins: %q is not a git repository: %v", dir, err)
		return pins
	}
	worktree, err := repo.Worktree()
	if err != nil {
		logger.Debugf("Not resolving submodule pins: no worktree in %q: %v", dir, err)
		return pins
	}
	submodules, err := worktree.Submodules()
	if err != nil {
		logger.Debugf("Not resolving submodule pins in %q: %v", dir, err)
		return pins
	}

	for _, sub := range submodules {
		status, statusErr := sub.Status()
		if statusErr != nil {
			logger.Debugf("Skipping pin for submodule %q: %v", sub.Config().Path, statusErr)
			continue
		}
		hash := status.Expected
		if hash.IsZero() {
			hash = status.Current
		}
		if !hash.IsZero() {
			pins[sub.Config().Path] = hash.String()
		}
	}
	return pins
}
