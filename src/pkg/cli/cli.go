// Package cli provides the interactive command loop of the roster application.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"roster/local-app/src/pkg/log"
	"roster/local-app/src/pkg/model"
	"roster/local-app/src/pkg/session"
)

const (
	invalidInputMessage = "Invalid input"
	farewellMessage     = "Quitting..."
	interruptMessage    = "Use 'quit' to exit the program."
)

// LineReader supplies input lines; *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// CLI represents the command-line interface
type CLI struct {
	session      *session.Session
	reader       LineReader
	writer       io.Writer
	preserveCase bool
	stopped      atomic.Bool
	logger       *log.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(sess *session.Session, reader LineReader, writer io.Writer, cfg *model.Config, logger *log.Logger) *CLI {
	return &CLI{
		session:      sess,
		reader:       reader,
		writer:       writer,
		preserveCase: cfg.PreserveCase,
		logger:       logger,
	}
}

// Run prints the help banner and then handles input lines until quit or end of input.
// It returns an error only when reading input fails for another reason.
func (c *CLI) Run(ctx context.Context) error {
	printHelp(c.writer)

	for {
		line, err := c.reader.Readline()
		if err != nil {
			switch {
			case c.stopped.Load():
				c.logger.Info(ctx, "CLI stopped", log.Fields{"sessionID": c.session.ID})
				return nil
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(c.writer, interruptMessage)
				continue
			case errors.Is(err, io.EOF):
				// End of input counts as quit
				c.logger.Info(ctx, "End of input", log.Fields{"sessionID": c.session.ID})
				fmt.Fprintln(c.writer, farewellMessage)
				return nil
			default:
				c.logger.Error(ctx, "Error reading input", log.Fields{"sessionID": c.session.ID, "error": err})
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		if !c.handleLine(ctx, line) {
			return nil
		}
	}
}

// handleLine executes one input line. It returns false once the loop should terminate.
func (c *CLI) handleLine(ctx context.Context, line string) bool {
	c.logger.LogCommand(ctx, line, log.Fields{"sessionID": c.session.ID})

	cmd, ok := ParseCommand(c.normalize(line))
	if !ok {
		c.logger.Debug(ctx, "Unrecognized input", log.Fields{"input": line})
		fmt.Fprintln(c.writer, invalidInputMessage)
		return true
	}

	switch cmd.Kind {
	case model.CommandHelp:
		printHelp(c.writer)
	case model.CommandQuit:
		c.logger.Info(ctx, "Quit requested", log.Fields{"sessionID": c.session.ID})
		fmt.Fprintln(c.writer, farewellMessage)
		return false
	default:
		lines, err := c.session.CommandRun(ctx, cmd)
		if err != nil {
			fmt.Fprintf(c.writer, "Error: %v\n", err)
			return true
		}
		for _, l := range lines {
			fmt.Fprintln(c.writer, l)
		}
	}

	return true
}

// normalize trims the line and, unless case is preserved, lowercases it.
func (c *CLI) normalize(line string) string {
	line = strings.TrimSpace(line)
	if !c.preserveCase {
		line = strings.ToLower(line)
	}
	return line
}

// Stop makes a blocked Run return by closing the reader
func (c *CLI) Stop() {
	if c.stopped.Swap(true) {
		return
	}
	if err := c.reader.Close(); err != nil {
		c.logger.Warn(context.Background(), "Failed to close line reader", log.Fields{"error": err})
	}
}
