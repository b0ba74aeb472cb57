package repositories

// Confirmer asks the user to approve a destructive action. The default
// implementation prompts on the console; tests and the
// --ignore-local-changes flag path swap in a non-interactive policy.
type Confirmer interface {
	Confirm(question string) bool
}
