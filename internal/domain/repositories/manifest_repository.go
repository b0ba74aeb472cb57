package repositories

import (
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// ManifestRepository abstracts the declarative manifest file: an ordered
// sequence of repository descriptors loaded lazily, mutated in memory, and
// persisted explicitly. In-memory and on-disk state may diverge until Save.
type ManifestRepository interface {
	// Load reads and parses the manifest file, resolving ${VAR}
	// environment placeholders. A missing file is entities.ErrManifestNotFound.
	Load() error

	// All returns the descriptors in declaration order.
	All() []entities.Repository

	// Find returns the descriptor with the given path, if any.
	Find(path string) (entities.Repository, bool)

	// Add appends a descriptor; a duplicate path is entities.ErrRepositoryExists.
	Add(repo entities.Repository) error

	// Remove deletes the descriptor with the given path; absent is a no-op.
	Remove(path string)

	// UpdateCommit mutates the matching descriptor's commit field in place
	// and reports whether a match was found.
	UpdateCommit(path, commit string) bool

	// Save serializes back to the loaded path, preserving declaration order.
	Save() error

	// SaveTo serializes the current contents to an alternate path.
	SaveTo(path string) error

	// Path returns the manifest file path.
	Path() string

	// Dir returns the manifest's directory, the base for all working copies.
	Dir() string
}
