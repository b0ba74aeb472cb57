package repositories

import (
	"context"

	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// WorkingCopyRepository reconciles the on-disk checkout of one descriptor
// with its declared state. All operations are synchronous and derive the
// working copy state from the filesystem on every call, so a failed run can
// be repaired by simply running again.
type WorkingCopyRepository interface {
	// Clone brings an absent or untracked working copy to the declared
	// state and returns the resulting pinned commit.
	Clone(ctx context.Context, repo entities.Repository, baseDir string, opts entities.CloneOptions) (string, error)

	// Update fetches and resets an existing working copy, delegating to
	// Clone when it is absent. Declining the local-changes confirmation
	// returns entities.ErrUserCancelled.
	Update(ctx context.Context, repo entities.Repository, baseDir string, opts entities.UpdateOptions) (string, error)

	// Remove deletes the working copy directory tree; absent is a no-op.
	// A descriptor failing validation is rejected before anything is
	// touched on disk.
	Remove(repo entities.Repository, baseDir string) error

	// State reports the observed on-disk state of the working copy.
	State(repo entities.Repository, baseDir string) entities.WorkingCopyState
}
