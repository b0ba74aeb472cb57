package repositories

import "github.com/rios0rios0/reposync/internal/domain/entities"

// SubmoduleRepository reads a native .gitmodules declaration file and
// exposes its entries, best-effort resolving each pinned commit from the
// surrounding superproject.
type SubmoduleRepository interface {
	List(dir, gitmodulesPath string) ([]entities.Submodule, error)
}
