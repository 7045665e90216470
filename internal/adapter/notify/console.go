package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Console prints notifications to a terminal.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	logger zerolog.Logger
}

// NewConsole creates a Console writing to out.
func NewConsole(out io.Writer, logger zerolog.Logger) *Console {
	return &Console{out: out, logger: logger}
}

// Success prints a success line.
func (c *Console) Success(_ context.Context, message string) {
	c.print("✔", message)
	c.logger.Debug().Str("kind", string(KindSuccess)).Msg(message)
}

// Failure prints a failure line.
func (c *Console) Failure(_ context.Context, message string) {
	c.print("✘", message)
	c.logger.Debug().Str("kind", string(KindFailure)).Msg(message)
}

func (c *Console) print(mark, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "%s %s\n", mark, message)
}
