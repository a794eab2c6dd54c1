package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ctrlAliases are control keys that share a code with a named key. They
// only get their ctrl+ name when the terminal reports the Ctrl modifier;
// otherwise ctrl+h, ctrl+i and ctrl+m arrive as backspace, tab and enter.
var ctrlAliases = map[tcell.Key]string{
	tcell.KeyBackspace: "ctrl+h",
	tcell.KeyTab:       "ctrl+i",
	tcell.KeyEnter:     "ctrl+m",
}

var namedKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyEscape:     "esc",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
}

// KeyName returns the binding name of a key event: the rune itself for
// printable keys ("u", "R"), "ctrl+r" for control keys, and names such as
// "up" or "delete" for special keys. Alt is written as an "alt+" prefix.
func KeyName(ev *tcell.EventKey) string {
	var name string
	switch k := ev.Key(); {
	case k == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0:
		name = "ctrl+" + strings.ToLower(string(ev.Rune()))
	case k == tcell.KeyRune:
		name = string(ev.Rune())
	case ev.Modifiers()&tcell.ModCtrl != 0 && ctrlAliases[k] != "":
		name = ctrlAliases[k]
	case namedKeys[k] != "":
		name = namedKeys[k]
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		name = "ctrl+" + string(rune('a'+int(k-tcell.KeyCtrlA)))
	default:
		return ""
	}

	if ev.Modifiers()&tcell.ModAlt != 0 {
		name = "alt+" + name
	}
	return name
}
