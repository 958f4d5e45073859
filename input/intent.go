package input

// IntentType discriminates semantic input actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+Q, Ctrl+C, Esc
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event
	IntentFocus      // Terminal gained focus
	IntentBlur       // Terminal lost focus

	// Keyboard
	IntentKey // Any key press; Code and Char carry the key

	// Manual control surface
	IntentButton // F1-F4; Button names the control

	// Pointer
	IntentPointerDown // Primary button pressed at X, Y
	IntentPointerUp   // Primary button released at X, Y
	IntentPointerMove // Motion with or without a held button
)

// Intent is one translated input event
type Intent struct {
	Type IntentType

	// IntentKey
	Code string // Physical key code, e.g. "ArrowUp", "KeyB"
	Char rune   // Printable character, 0 for non-printing keys

	// IntentButton
	Button string

	// Pointer intents, in terminal cells
	X, Y int
	Held bool // PointerMove with the primary button down
}

// Activity reports whether the intent counts as user interaction for the idle timer
func (i Intent) Activity() bool {
	switch i.Type {
	case IntentKey, IntentButton, IntentPointerDown, IntentPointerUp, IntentPointerMove:
		return true
	}
	return false
}
