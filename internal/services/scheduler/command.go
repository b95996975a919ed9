package scheduler

import "fmt"

// Command is a player input applied between ticks
type Command int

const (
	CommandLeft Command = iota
	CommandRight
	CommandRotate
	CommandDrop
	CommandSoftDrop
	CommandPause
	CommandQuit
)

var commandNames = map[Command]string{
	CommandLeft:     "left",
	CommandRight:    "right",
	CommandRotate:   "rotate",
	CommandDrop:     "drop",
	CommandSoftDrop: "soft_drop",
	CommandPause:    "pause",
	CommandQuit:     "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}
