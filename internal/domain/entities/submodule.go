package entities

// Submodule is one entry read from a native .gitmodules declaration.
// Commit is the superproject's pinned gitlink when it could be resolved,
// empty otherwise.
type Submodule struct {
	Path   string
	URL    string
	Branch string
	Commit string
}
