package entities

// CloneOptions holds runtime options for bringing an absent or untracked
// working copy to its declared state.
type CloneOptions struct {
	// GitClean strips the .git directory after pinning, leaving a plain
	// content directory on disk.
	GitClean bool
}

// UpdateOptions holds runtime options for updating an existing working copy.
type UpdateOptions struct {
	// Remote resets to origin/<branch> instead of the stored commit.
	Remote bool
	// GitClean strips the .git directory after the update.
	GitClean bool
	// IgnoreLocalChanges skips the interactive confirmation before
	// discarding local modifications.
	IgnoreLocalChanges bool
}
