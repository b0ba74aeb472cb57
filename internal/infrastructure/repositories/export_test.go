package repositories

import "io"

// NewConsoleConfirmerWithIO exports an injectable constructor for testing.
func NewConsoleConfirmerWithIO(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: in, out: out}
}
