package detect

import "github.com/lixenwraith/orchead/effect"

// Konami is the classic code, as physical key codes
var Konami = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"KeyB", "KeyA",
}

// KeySequence matches a fixed sequence of key codes
type KeySequence struct {
	seq      []string
	cursor   int
	target   effect.ID
	dispatch Dispatch
}

// NewKeySequence matches seq and dispatches target on completion
func NewKeySequence(seq []string, target effect.ID, dispatch Dispatch) *KeySequence {
	return &KeySequence{
		seq:      append([]string(nil), seq...),
		target:   target,
		dispatch: dispatch,
	}
}

// Key feeds one key code, reporting whether it completed the sequence
func (k *KeySequence) Key(code string) bool {
	if len(k.seq) == 0 {
		return false
	}
	if code != k.seq[k.cursor] {
		// A wrong key may itself start a new attempt
		k.cursor = 0
		if code == k.seq[0] {
			k.cursor = 1
		}
		return false
	}

	k.cursor++
	if k.cursor < len(k.seq) {
		return false
	}
	k.cursor = 0
	k.dispatch.fire(k.target)
	return true
}

// Cursor returns how many codes of the sequence have matched so far
func (k *KeySequence) Cursor() int { return k.cursor }
