package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Control names shared with the on-screen buttons and the remote surface
const (
	ButtonSummon = "summon"
	ButtonHorn   = "horn"
	ButtonChaos  = "chaos"
	ButtonParty  = "party"
)

// KeyEntry describes what a special key does
type KeyEntry struct {
	Intent IntentType
	Code   string // IntentKey: the code reported for the key
	Button string // IntentButton: the control pressed
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Runes with a fixed code outside the letter/digit scheme
	RuneCodes map[rune]string
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},

			tcell.KeyUp:    {Intent: IntentKey, Code: "ArrowUp"},
			tcell.KeyDown:  {Intent: IntentKey, Code: "ArrowDown"},
			tcell.KeyLeft:  {Intent: IntentKey, Code: "ArrowLeft"},
			tcell.KeyRight: {Intent: IntentKey, Code: "ArrowRight"},

			tcell.KeyEnter:      {Intent: IntentKey, Code: "Enter"},
			tcell.KeyTab:        {Intent: IntentKey, Code: "Tab"},
			tcell.KeyBackspace:  {Intent: IntentKey, Code: "Backspace"},
			tcell.KeyBackspace2: {Intent: IntentKey, Code: "Backspace"},

			tcell.KeyF1: {Intent: IntentButton, Button: ButtonSummon},
			tcell.KeyF2: {Intent: IntentButton, Button: ButtonHorn},
			tcell.KeyF3: {Intent: IntentButton, Button: ButtonChaos},
			tcell.KeyF4: {Intent: IntentButton, Button: ButtonParty},
		},
		RuneCodes: map[rune]string{
			' ':  "Space",
			'-':  "Minus",
			'=':  "Equal",
			',':  "Comma",
			'.':  "Period",
			'/':  "Slash",
			';':  "Semicolon",
			'\'': "Quote",
		},
	}
}

// RuneCode returns the physical key code for a printable rune
// Letters map to "Key<upper>" and digits to "Digit<n>" regardless of shift state
func (kt *KeyTable) RuneCode(r rune) string {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + string(unicode.ToUpper(r))
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	}
	if code, ok := kt.RuneCodes[r]; ok {
		return code
	}
	return ""
}
