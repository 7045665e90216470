package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Terminal asks for confirmation on an interactive terminal.
type Terminal struct {
	mu        sync.Mutex
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewTerminal creates a Terminal prompting on out and reading answers from
// in. With assumeYes every prompt is accepted without reading.
func NewTerminal(in io.Reader, out io.Writer, assumeYes bool) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Confirm prints prompt and accepts "y" or "yes". Anything else, including
// end of input or a cancelled context, declines.
func (t *Terminal) Confirm(ctx context.Context, prompt string) bool {
	if t.assumeYes {
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)

	answer, err := t.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
