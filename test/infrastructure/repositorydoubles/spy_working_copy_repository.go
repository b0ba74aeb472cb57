//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// SpyWorkingCopyRepository implements repositories.WorkingCopyRepository as
// a configurable spy. Configure per-path commits and errors, then inspect
// the call-tracking fields.
type SpyWorkingCopyRepository struct {
	// --- Clone ---
	CloneCommits map[string]string // path -> commit returned
	CloneErrs    map[string]error  // path -> error returned
	ClonedPaths  []string

	// --- Update ---
	UpdateCommits map[string]string
	UpdateErrs    map[string]error
	UpdatedPaths  []string
	UpdateOpts    []entities.UpdateOptions

	// --- Remove ---
	RemoveErr    error
	RemovedPaths []string

	// --- State ---
	States map[string]entities.WorkingCopyState // path -> state
}

var _ repositories.WorkingCopyRepository = (*SpyWorkingCopyRepository)(nil)

func (it *SpyWorkingCopyRepository) Clone(
	_ context.Context, repo entities.Repository, _ string, _ entities.CloneOptions,
) (string, error) {
	it.ClonedPaths = append(it.ClonedPaths, repo.Path)
	if err, ok := it.CloneErrs[repo.Path]; ok {
		return "", err
	}
	return it.CloneCommits[repo.Path], nil
}

func (it *SpyWorkingCopyRepository) Update(
	_ context.Context, repo entities.Repository, _ string, opts entities.UpdateOptions,
) (string, error) {
	it.UpdatedPaths = append(it.UpdatedPaths, repo.Path)
	it.UpdateOpts = append(it.UpdateOpts, opts)
	if err, ok := it.UpdateErrs[repo.Path]; ok {
		return "", err
	}
	return it.UpdateCommits[repo.Path], nil
}

func (it *SpyWorkingCopyRepository) Remove(repo entities.Repository, _ string) error {
	it.RemovedPaths = append(it.RemovedPaths, repo.Path)
	return it.RemoveErr
}

func (it *SpyWorkingCopyRepository) State(
	repo entities.Repository, _ string,
) entities.WorkingCopyState {
	if it.States != nil {
		if state, ok := it.States[repo.Path]; ok {
			return state
		}
	}
	return entities.WorkingCopyAbsent
}
