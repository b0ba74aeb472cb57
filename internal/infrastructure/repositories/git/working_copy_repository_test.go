//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories/git"
	builders "github.com/rios0rios0/reposync/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/reposync/test/infrastructure/repositorydoubles"
)

func newReconciler(
	runner *doubles.SpyGitRunner, confirmer *doubles.StubConfirmer,
) *git.WorkingCopyRepository {
	if confirmer == nil {
		confirmer = &doubles.StubConfirmer{Answer: true}
	}
	return git.NewWorkingCopyRepository(runner, confirmer, &entities.Settings{GitBinary: "git"})
}

// makeTracked lays out a directory that looks like an existing clone.
func makeTracked(t *testing.T, baseDir, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, path, ".git"), 0o755))
}

// makeUntracked lays out a directory without git metadata.
func makeUntracked(t *testing.T, baseDir, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, path), 0o755))
}

func TestWorkingCopyRepositoryState(t *testing.T) {
	t.Parallel()

	t.Run("should report absent when the directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		state := reconciler.State(repo, baseDir)

		// then
		assert.Equal(t, entities.WorkingCopyAbsent, state)
	})

	t.Run("should report untracked when git metadata is missing", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeUntracked(t, baseDir, repo.Path)
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		state := reconciler.State(repo, baseDir)

		// then
		assert.Equal(t, entities.WorkingCopyUntracked, state)
	})

	t.Run("should report tracked when git metadata is present", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		state := reconciler.State(repo, baseDir)

		// then
		assert.Equal(t, entities.WorkingCopyTracked, state)
	})
}

func TestWorkingCopyRepositoryClone(t *testing.T) {
	t.Parallel()

	t.Run("should clone an absent copy with depth and branch", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithDepth(3).BuildRepository()
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "abc123"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		commit, err := reconciler.Clone(context.Background(), repo, baseDir, entities.CloneOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "abc123", commit)
		lines := runner.CommandLines()
		require.Len(t, lines, 2)
		abs := filepath.Join(baseDir, repo.Path)
		assert.Equal(t, "clone --depth 3 --branch main --filter=blob:none --single-branch "+
			repo.URL+" "+abs, lines[0])
		assert.Equal(t, "rev-parse HEAD", lines[1])
		assert.Equal(t, filepath.Dir(abs), runner.Calls[0].Dir)
	})

	t.Run("should fetch and reset the pinned commit after cloning", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithCommit("deadbeef").BuildRepository()
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "deadbeef"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		commit, err := reconciler.Clone(context.Background(), repo, baseDir, entities.CloneOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", commit)
		lines := runner.CommandLines()
		require.Len(t, lines, 5)
		assert.Equal(t, "fetch --depth 1 origin deadbeef", lines[1])
		assert.Equal(t, "reset --quiet --hard deadbeef", lines[2])
		assert.Equal(t, "clean -ffd", lines[3])
		assert.Equal(t, "rev-parse HEAD", lines[4])
	})

	t.Run("should recreate an untracked directory in place", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeUntracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "abc123"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		_, err := reconciler.Clone(context.Background(), repo, baseDir, entities.CloneOptions{})

		// then
		require.NoError(t, err)
		lines := runner.CommandLines()
		require.GreaterOrEqual(t, len(lines), 6)
		assert.Equal(t, "init", lines[0])
		assert.Equal(t, "remote add origin "+repo.URL, lines[1])
		assert.Equal(t, "checkout -b main", lines[2])
		assert.Equal(t, "fetch --depth 1 origin main", lines[3])
		assert.Equal(t, "reset --quiet --hard FETCH_HEAD", lines[4])
	})

	t.Run("should fail recreating when the descriptor has no branch", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithBranch("").BuildRepository()
		makeUntracked(t, baseDir, repo.Path)
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		_, err := reconciler.Clone(context.Background(), repo, baseDir, entities.CloneOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no branch")
	})

	t.Run("should reject a descriptor without path or url", func(t *testing.T) {
		t.Parallel()

		// given
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		_, err := reconciler.Clone(
			context.Background(), entities.Repository{Path: "vendor/x"}, t.TempDir(),
			entities.CloneOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryInvalid)
	})

	t.Run("should strip git metadata when requested", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "abc123"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		commit, err := reconciler.Clone(
			context.Background(), repo, baseDir, entities.CloneOptions{GitClean: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, "abc123", commit)
		assert.NoDirExists(t, filepath.Join(baseDir, repo.Path, ".git"))
	})
}

func TestWorkingCopyRepositoryUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should cancel when local changes are not confirmed", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{}
		confirmer := &doubles.StubConfirmer{Answer: false}
		reconciler := newReconciler(runner, confirmer)

		// when
		_, err := reconciler.Update(
			context.Background(), repo, baseDir, entities.UpdateOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrUserCancelled)
		assert.Empty(t, runner.Calls)
		assert.Len(t, confirmer.Questions, 1)
	})

	t.Run("should skip confirmation when local changes are ignored", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithCommit("deadbeef").BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "deadbeef"},
		}}
		confirmer := &doubles.StubConfirmer{Answer: false}
		reconciler := newReconciler(runner, confirmer)

		// when
		_, err := reconciler.Update(context.Background(), repo, baseDir,
			entities.UpdateOptions{IgnoreLocalChanges: true})

		// then
		require.NoError(t, err)
		assert.Empty(t, confirmer.Questions)
	})

	t.Run("should reset a tracked copy to its pinned commit", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithCommit("deadbeef").BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "deadbeef"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		commit, err := reconciler.Update(
			context.Background(), repo, baseDir, entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", commit)
		lines := runner.CommandLines()
		require.Len(t, lines, 4)
		assert.Equal(t, "fetch --depth 1 origin deadbeef", lines[0])
		assert.Equal(t, "reset --quiet --hard deadbeef", lines[1])
		assert.Equal(t, "clean -ffd", lines[2])
		assert.Equal(t, "rev-parse HEAD", lines[3])
	})

	t.Run("should track the remote branch tip when remote is requested", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithCommit("deadbeef").BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "newcommit"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		commit, err := reconciler.Update(context.Background(), repo, baseDir,
			entities.UpdateOptions{Remote: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, "newcommit", commit)
		lines := runner.CommandLines()
		require.Len(t, lines, 4)
		assert.Equal(t, "fetch origin main", lines[0])
		assert.Equal(t, "reset --quiet --hard origin/main", lines[1])
	})

	t.Run("should fail remote tracking without a branch", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithBranch("").BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		_, err := reconciler.Update(context.Background(), repo, baseDir,
			entities.UpdateOptions{Remote: true, IgnoreLocalChanges: true})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no branch")
	})

	t.Run("should fall back to the branch tip when no commit is pinned", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "tip"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		_, err := reconciler.Update(
			context.Background(), repo, baseDir, entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		lines := runner.CommandLines()
		assert.Equal(t, "fetch --depth 1 origin main", lines[0])
		assert.Equal(t, "reset --quiet --hard FETCH_HEAD", lines[1])
	})

	t.Run("should fail when the descriptor has neither commit nor branch", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().WithBranch("").BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		_, err := reconciler.Update(context.Background(), repo, baseDir,
			entities.UpdateOptions{IgnoreLocalChanges: true})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "neither commit nor branch")
	})

	t.Run("should delegate an absent copy to clone", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		runner := &doubles.SpyGitRunner{Responses: map[string]doubles.GitResponse{
			"rev-parse": {Stdout: "abc123"},
		}}
		reconciler := newReconciler(runner, nil)

		// when
		commit, err := reconciler.Update(
			context.Background(), repo, baseDir, entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "abc123", commit)
		require.NotEmpty(t, runner.Calls)
		assert.Equal(t, "clone", runner.Calls[0].Args[0])
	})
}

func TestWorkingCopyRepositoryRemove(t *testing.T) {
	t.Parallel()

	t.Run("should delete an existing working copy", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		makeTracked(t, baseDir, repo.Path)
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		err := reconciler.Remove(repo, baseDir)

		// then
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(baseDir, repo.Path))
	})

	t.Run("should refuse a descriptor without a path and keep the base directory", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(baseDir, "repositories.yml"), []byte("repositories: []\n"), 0o644))
		makeTracked(t, baseDir, "vendor/kept")
		repo := builders.NewRepositoryBuilder().WithPath("").BuildRepository()
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		err := reconciler.Remove(repo, baseDir)

		// then
		require.ErrorIs(t, err, entities.ErrRepositoryInvalid)
		assert.FileExists(t, filepath.Join(baseDir, "repositories.yml"))
		assert.DirExists(t, filepath.Join(baseDir, "vendor/kept"))
	})

	t.Run("should treat an absent working copy as a no-op", func(t *testing.T) {
		t.Parallel()

		// given
		baseDir := t.TempDir()
		repo := builders.NewRepositoryBuilder().BuildRepository()
		reconciler := newReconciler(&doubles.SpyGitRunner{}, nil)

		// when
		err := reconciler.Remove(repo, baseDir)

		// then
		require.NoError(t, err)
	})
}
