package cli

import (
	"strings"

	"roster/local-app/src/pkg/model"
)

// ParseCommand matches the whitespace-separated words of line against the fixed command grammar:
//
//	help
//	quit
//	all
//	list <department>
//	add <name> to <department>
//
// Keywords match case-insensitively; names and departments are taken verbatim.
// The second return value is false when line matches no command.
func ParseCommand(line string) (model.Command, bool) {
	words := strings.Fields(line)

	switch len(words) {
	case 1:
		switch {
		case keyword(words[0], "help"):
			return model.Command{Kind: model.CommandHelp}, true
		case keyword(words[0], "quit"):
			return model.Command{Kind: model.CommandQuit}, true
		case keyword(words[0], "all"):
			return model.Command{Kind: model.CommandListAll}, true
		}
	case 2:
		if keyword(words[0], "list") {
			return model.Command{Kind: model.CommandList, Department: words[1]}, true
		}
	case 4:
		if keyword(words[0], "add") && keyword(words[2], "to") {
			return model.Command{Kind: model.CommandAdd, Name: words[1], Department: words[3]}, true
		}
	}

	return model.Command{}, false
}

func keyword(word, want string) bool {
	return strings.EqualFold(word, want)
}
