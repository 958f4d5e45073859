// Package input turns tcell events into intents
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator converts raw terminal events into intents
// Tracks mouse button state to split press, release and drag
type Translator struct {
	table *KeyTable
	held  bool
}

// NewTranslator creates a translator over table; nil uses DefaultKeyTable
func NewTranslator(table *KeyTable) *Translator {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Translator{table: table}
}

// Translate returns the intent for ev, IntentNone when it carries nothing
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventFocus:
		if ev.Focused {
			return Intent{Type: IntentFocus}
		}
		return Intent{Type: IntentBlur}
	}
	return Intent{}
}

func (t *Translator) key(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'q' || r == 'c') {
			return Intent{Type: IntentQuit}
		}
		return Intent{Type: IntentKey, Code: t.table.RuneCode(r), Char: r}
	}

	entry, ok := t.table.SpecialKeys[ev.Key()]
	if !ok {
		return Intent{}
	}
	switch entry.Intent {
	case IntentKey:
		return Intent{Type: IntentKey, Code: entry.Code}
	case IntentButton:
		return Intent{Type: IntentButton, Button: entry.Button}
	}
	return Intent{Type: entry.Intent}
}

func (t *Translator) mouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.held:
		t.held = true
		return Intent{Type: IntentPointerDown, X: x, Y: y}
	case !down && t.held:
		t.held = false
		return Intent{Type: IntentPointerUp, X: x, Y: y}
	}
	return Intent{Type: IntentPointerMove, X: x, Y: y, Held: t.held}
}
