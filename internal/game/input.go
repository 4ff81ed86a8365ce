package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a player command decoded from a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionQuit
)

// namedKeys covers the arrows plus Home/PgUp/End/PgDn, which is what a
// numpad sends with num lock off.
var namedKeys = map[tcell.Key]Action{
	tcell.KeyUp:     ActionMoveN,
	tcell.KeyDown:   ActionMoveS,
	tcell.KeyRight:  ActionMoveE,
	tcell.KeyLeft:   ActionMoveW,
	tcell.KeyHome:   ActionMoveNW,
	tcell.KeyPgUp:   ActionMoveNE,
	tcell.KeyEnd:    ActionMoveSW,
	tcell.KeyPgDn:   ActionMoveSE,
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
}

// runeKeys maps vi keys and numpad digits. Letters match in either case.
var runeKeys = map[rune]Action{
	'k': ActionMoveN, '8': ActionMoveN,
	'j': ActionMoveS, '2': ActionMoveS,
	'l': ActionMoveE, '6': ActionMoveE,
	'h': ActionMoveW, '4': ActionMoveW,
	'y': ActionMoveNW, '7': ActionMoveNW,
	'u': ActionMoveNE, '9': ActionMoveNE,
	'b': ActionMoveSW, '1': ActionMoveSW,
	'n': ActionMoveSE, '3': ActionMoveSE,
	'.': ActionWait, '5': ActionWait,
	'q': ActionQuit,
}

// moveDeltas is indexed by Action; non-moves have no delta.
var moveDeltas = [...][2]int{
	ActionMoveN:  {0, -1},
	ActionMoveS:  {0, 1},
	ActionMoveE:  {1, 0},
	ActionMoveW:  {-1, 0},
	ActionMoveNE: {1, -1},
	ActionMoveNW: {-1, -1},
	ActionMoveSE: {1, 1},
	ActionMoveSW: {-1, 1},
	ActionWait:   {0, 0},
	ActionQuit:   {0, 0},
}

func keyToAction(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return namedKeys[ev.Key()]
	}
	return runeKeys[unicode.ToLower(ev.Rune())]
}

func actionToDelta(a Action) (int, int) {
	if int(a) >= len(moveDeltas) {
		return 0, 0
	}
	d := moveDeltas[a]
	return d[0], d[1]
}
