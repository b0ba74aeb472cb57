package entities

import "errors"

var (
	// ErrManifestNotFound is returned when the manifest file does not exist.
	// There is nothing to reconcile without a manifest, so this is fatal.
	ErrManifestNotFound = errors.New("manifest file not found")

	// ErrRepositoryInvalid marks a descriptor missing its required url or path.
	ErrRepositoryInvalid = errors.New("repository descriptor is missing required fields")

	// ErrRepositoryNotFound is returned when an explicit path filter has no match.
	ErrRepositoryNotFound = errors.New("repository not found in manifest")

	// ErrRepositoryExists is returned when adding a path already declared.
	ErrRepositoryExists = errors.New("repository already exists in manifest")

	// ErrGitNotFound is returned when the git executable is absent from PATH.
	ErrGitNotFound = errors.New("git executable not found")

	// ErrUserCancelled is returned when the user declines the local-changes
	// confirmation. It ends that one descriptor's update without marking it
	// an error.
	ErrUserCancelled = errors.New("operation cancelled by user")
)
