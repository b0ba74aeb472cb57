package repositories

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	domainRepos "github.com/rios0rios0/reposync/internal/domain/repositories"
)

// ConsoleConfirmer asks yes/no questions on the terminal. The answer
// defaults to "no", so unattended runs that reach a prompt decline safely.
type ConsoleConfirmer struct {
	in  io.Reader
	out io.Writer
}

var _ domainRepos.Confirmer = (*ConsoleConfirmer)(nil)

// NewConsoleConfirmer creates a confirmer reading stdin and writing stdout.
func NewConsoleConfirmer() *ConsoleConfirmer {
	return &ConsoleConfirmer{in: os.Stdin, out: os.Stdout}
}

// Confirm prints the question and blocks for a y/N answer.
func (it *ConsoleConfirmer) Confirm(question string) bool {
	fmt.Fprintf(it.out, "%s [y/N]: ", question)

	answer, err := bufio.NewReader(it.in).ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
