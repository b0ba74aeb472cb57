package entities

// Manifest is the ordered list of repository descriptors declared in one
// YAML file. Order is meaningful: it is preserved across save/load and is
// the default processing order for batch operations.
type Manifest struct {
	Repositories []Repository `yaml:"repositories"`
}

// Find returns the descriptor with the given path, if any.
func (m *Manifest) Find(path string) (Repository, bool) {
	for _, repo := range m.Repositories {
		if repo.Path == path {
			return repo, true
		}
	}
	return Repository{}, false
}
