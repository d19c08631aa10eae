package tui

import (
	"strings"

	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
)

type commandKind int

const (
	cmdAdvance commandKind = iota
	cmdChoose
	cmdMove
	cmdWhere
	cmdInventory
	cmdGive
	cmdUse
	cmdQuit
	cmdHelp
	cmdUnknown
)

type command struct {
	kind     commandKind
	option   string
	arg      string
	receiver string
}

const helpText = "Enter — дальше, a/b — выбор, /go <направление>, /where, /inv, /give <кому>: <предмет>, /use <предмет>, /quit"

// parseCommand maps one line of player input to an action. An empty line
// advances the dialogue.
func parseCommand(input string) command {
	input = strings.TrimSpace(input)
	if input == "" {
		return command{kind: cmdAdvance}
	}

	switch upper := strings.ToUpper(input); upper {
	case session.OptionA, "А":
		return command{kind: cmdChoose, option: session.OptionA}
	case session.OptionB, "Б":
		return command{kind: cmdChoose, option: session.OptionB}
	}

	if !strings.HasPrefix(input, "/") {
		return command{kind: cmdUnknown, arg: input}
	}

	verb, rest, _ := strings.Cut(input[1:], " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "go":
		if rest == "" {
			return command{kind: cmdUnknown, arg: input}
		}
		return command{kind: cmdMove, arg: rest}
	case "where":
		return command{kind: cmdWhere}
	case "inv":
		return command{kind: cmdInventory}
	case "give":
		receiver, item, ok := strings.Cut(rest, ":")
		receiver, item = strings.TrimSpace(receiver), strings.TrimSpace(item)
		if !ok || receiver == "" || item == "" {
			return command{kind: cmdUnknown, arg: input}
		}
		return command{kind: cmdGive, arg: item, receiver: receiver}
	case "use":
		if rest == "" {
			return command{kind: cmdUnknown, arg: input}
		}
		return command{kind: cmdUse, arg: rest}
	case "quit", "exit":
		return command{kind: cmdQuit}
	case "help":
		return command{kind: cmdHelp}
	}

	return command{kind: cmdUnknown, arg: input}
}
