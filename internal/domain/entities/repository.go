package entities

import "fmt"

// Repository describes the desired state of one externally-tracked repository:
// where it lives remotely, where its working copy belongs on disk, and which
// ref it is pinned to. Path is the unique key within a manifest.
type Repository struct {
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
	Branch string `yaml:"branch,omitempty"`
	Commit string `yaml:"commit,omitempty"`
	Depth  int    `yaml:"depth,omitempty"`
}

// Validate checks that the fields required for any reconciliation action are
// present. A descriptor failing validation is skipped, never aborts a batch.
func (r Repository) Validate() error {
	if r.Path == "" || r.URL == "" {
		return fmt.Errorf("%w: path=%q url=%q", ErrRepositoryInvalid, r.Path, r.URL)
	}
	return nil
}
