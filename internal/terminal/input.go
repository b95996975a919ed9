package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mcoot/blockgame-go/internal/services/scheduler"
)

// CommandForKey maps a key press to a runner command
func CommandForKey(key tcell.Key, r rune) (scheduler.Command, bool) {
	switch key {
	case tcell.KeyLeft:
		return scheduler.CommandLeft, true
	case tcell.KeyRight:
		return scheduler.CommandRight, true
	case tcell.KeyUp:
		return scheduler.CommandRotate, true
	case tcell.KeyDown:
		return scheduler.CommandSoftDrop, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return scheduler.CommandQuit, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return scheduler.CommandDrop, true
		case 'p', 'P':
			return scheduler.CommandPause, true
		case 'q', 'Q':
			return scheduler.CommandQuit, true
		// vi keys
		case 'h':
			return scheduler.CommandLeft, true
		case 'l':
			return scheduler.CommandRight, true
		case 'k':
			return scheduler.CommandRotate, true
		case 'j':
			return scheduler.CommandSoftDrop, true
		}
	}
	return 0, false
}
