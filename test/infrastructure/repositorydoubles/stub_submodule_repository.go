//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// StubSubmoduleRepository implements repositories.SubmoduleRepository with a
// scripted listing.
type StubSubmoduleRepository struct {
	Submodules []entities.Submodule
	ListErr    error

	// spy: gitmodules paths requested
	ListedPaths []string
}

var _ repositories.SubmoduleRepository = (*StubSubmoduleRepository)(nil)

func (it *StubSubmoduleRepository) List(
	_, gitmodulesPath string,
) ([]entities.Submodule, error) {
	it.ListedPaths = append(it.ListedPaths, gitmodulesPath)
	return it.Submodules, it.ListErr
}
