// Package model defines the data structures used throughout the roster application.
package model

import "fmt"

// CommandKind identifies which case of the Command variant is populated.
type CommandKind int

const (
	CommandAdd CommandKind = iota + 1
	CommandList
	CommandListAll
	CommandQuit
	CommandHelp
)

// String returns the keyword of the command kind
func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandList:
		return "list"
	case CommandListAll:
		return "all"
	case CommandQuit:
		return "quit"
	case CommandHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Command represents one parsed user instruction.
// Department is set for add and list, Name only for add.
type Command struct {
	Kind       CommandKind
	Department string
	Name       string
}

func (c Command) String() string {
	switch c.Kind {
	case CommandAdd:
		return fmt.Sprintf("add %s to %s", c.Name, c.Department)
	case CommandList:
		return fmt.Sprintf("list %s", c.Department)
	default:
		return c.Kind.String()
	}
}
