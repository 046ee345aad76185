package app

import (
	"strconv"
	"strings"

	"github.com/letsssgooo/quizApp/internal/quiz"
)

type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdAnswer
	cmdName
	cmdRestart
	cmdQuit
	cmdHelp
)

type command struct {
	kind   commandKind
	option int
	name   string
}

// parseCommand разбирает строку ввода.
// Для /name всё после первого пробела берётся как есть.
func parseCommand(text string) command {
	switch {
	case text == "/name":
		return command{kind: cmdName}
	case strings.HasPrefix(text, "/name "):
		return command{kind: cmdName, name: strings.TrimPrefix(text, "/name ")}
	}

	trimmed := strings.TrimSpace(text)
	switch strings.ToLower(trimmed) {
	case "/restart":
		return command{kind: cmdRestart}
	case "/quit", "/exit":
		return command{kind: cmdQuit}
	case "/help", "?":
		return command{kind: cmdHelp}
	}

	if len(trimmed) == 1 {
		if idx, ok := letterIndex(trimmed); ok {
			return command{kind: cmdAnswer, option: idx}
		}
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		return command{kind: cmdAnswer, option: n - 1}
	}

	return command{kind: cmdUnknown}
}

func letterIndex(s string) (int, bool) {
	return quiz.LetterToIndex(strings.ToUpper(s))
}
