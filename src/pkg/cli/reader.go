package cli

import (
	"github.com/chzyer/readline"

	"roster/local-app/src/pkg/model"
)

// ReaderConfig builds the readline configuration for the command loop.
// isTerminal reports whether stdin is an interactive terminal; piped input
// has carriage returns dropped so CRLF line endings yield one line, not two.
func ReaderConfig(cfg *model.Config, isTerminal bool) *readline.Config {
	rlCfg := &readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		FuncIsTerminal:  func() bool { return isTerminal },
	}
	if !isTerminal {
		rlCfg.FuncFilterInputRune = dropCarriageReturn
	}
	return rlCfg
}

func dropCarriageReturn(r rune) (rune, bool) {
	if r == '\r' {
		return r, false
	}
	return r, true
}
