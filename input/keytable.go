package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tilequest/core"
)

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]core.Command

	// Printable rune bindings, matched case-insensitively for letters
	Runes map[rune]core.Command
}

// DefaultKeyTable returns arrows, hjkl and wasd for movement; Enter, Space and e to confirm;
// q, Esc and Ctrl+C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Command{
			tcell.KeyUp:     core.CmdUp,
			tcell.KeyDown:   core.CmdDown,
			tcell.KeyLeft:   core.CmdLeft,
			tcell.KeyRight:  core.CmdRight,
			tcell.KeyEnter:  core.CmdConfirm,
			tcell.KeyEscape: core.CmdQuit,
			tcell.KeyCtrlC:  core.CmdQuit,
		},
		Runes: map[rune]core.Command{
			'k': core.CmdUp,
			'j': core.CmdDown,
			'h': core.CmdLeft,
			'l': core.CmdRight,
			'w': core.CmdUp,
			's': core.CmdDown,
			'a': core.CmdLeft,
			'd': core.CmdRight,
			' ': core.CmdConfirm,
			'e': core.CmdConfirm,
			'q': core.CmdQuit,
		},
	}
}

// Translate maps a terminal event to a command. Anything unbound is CmdNone
func (kt *KeyTable) Translate(ev tcell.Event) core.Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return core.CmdNone
	}

	if key.Key() == tcell.KeyRune {
		r := key.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key.Key()]
}
