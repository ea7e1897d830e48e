package cli

import (
	"fmt"
	"io"
)

// CommandHelp describes one supported interaction pattern.
type CommandHelp struct {
	Syntax string
}

const helpHeader = "Supported commands:"

// commandHelps lists the interaction patterns in the order they are numbered in the help text.
var commandHelps = []CommandHelp{
	{Syntax: "Add [name] to [department]"},
	{Syntax: "List [department], All, or Quit"},
	{Syntax: "All"},
	{Syntax: "Quit"},
	{Syntax: "Help to bring up this again."},
}

// printHelp writes the numbered command summary followed by a blank line.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, helpHeader)
	for i, cmd := range commandHelps {
		fmt.Fprintf(w, "%d. %s\n", i+1, cmd.Syntax)
	}
	fmt.Fprintln(w)
}
