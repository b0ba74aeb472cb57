//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// StubConfirmer implements repositories.Confirmer with a fixed answer.
type StubConfirmer struct {
	Answer    bool
	Questions []string
}

var _ repositories.Confirmer = (*StubConfirmer)(nil)

func (it *StubConfirmer) Confirm(question string) bool {
	it.Questions = append(it.Questions, question)
	return it.Answer
}
