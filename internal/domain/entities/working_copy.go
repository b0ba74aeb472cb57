package entities

// WorkingCopyState is the observed on-disk state of one descriptor's checkout.
// It is derived from the filesystem on every reconciliation pass and never
// persisted.
type WorkingCopyState int

const (
	// WorkingCopyAbsent means the directory does not exist.
	WorkingCopyAbsent WorkingCopyState = iota
	// WorkingCopyUntracked means the directory exists without git metadata.
	WorkingCopyUntracked
	// WorkingCopyTracked means the directory exists and has a .git subdirectory.
	WorkingCopyTracked
)

func (s WorkingCopyState) String() string {
	switch s {
	case WorkingCopyAbsent:
		return "absent"
	case WorkingCopyUntracked:
		return "untracked"
	case WorkingCopyTracked:
		return "tracked"
	default:
		return "unknown"
	}
}
