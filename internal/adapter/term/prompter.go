package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"postdesk/internal/core/ports"
)

// Prompter asks accept/decline questions on the terminal. Anything but
// an explicit yes declines, so a stray enter never overrides a warning.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

var _ ports.Prompter = (*Prompter)(nil)

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (p *Prompter) Inform(message string) {
	fmt.Fprintln(p.out, message)
}
