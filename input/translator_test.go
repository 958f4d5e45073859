package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyCodes(t *testing.T) {
	tr := NewTranslator(nil)

	tests := []struct {
		ev   *tcell.EventKey
		code string
		char rune
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "ArrowUp", 0},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "ArrowRight", 0},
		{tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), "Backspace", 0},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "Backspace", 0},
		{tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), "KeyB", 'b'},
		{tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModShift), "KeyA", 'A'},
		{tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), "Digit7", '7'},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "Space", ' '},
		{tcell.NewEventKey(tcell.KeyRune, 'ß', tcell.ModNone), "", 'ß'},
	}
	for _, tt := range tests {
		got := tr.Translate(tt.ev)
		if got.Type != IntentKey || got.Code != tt.code || got.Char != tt.char {
			t.Errorf("%v: got %+v, want code %q char %q", tt.ev.Name(), got, tt.code, tt.char)
		}
	}
}

func TestSystemKeys(t *testing.T) {
	tr := NewTranslator(nil)

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	}
	for _, ev := range quits {
		if got := tr.Translate(ev); got.Type != IntentQuit {
			t.Errorf("%s should quit, got %+v", ev.Name(), got)
		}
	}
	if got := tr.Translate(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)); got.Type != IntentToggleMute {
		t.Errorf("Ctrl+S should toggle mute, got %+v", got)
	}
}

func TestFunctionKeysPressButtons(t *testing.T) {
	tr := NewTranslator(nil)
	want := map[tcell.Key]string{
		tcell.KeyF1: ButtonSummon,
		tcell.KeyF2: ButtonHorn,
		tcell.KeyF3: ButtonChaos,
		tcell.KeyF4: ButtonParty,
	}
	for key, button := range want {
		got := tr.Translate(tcell.NewEventKey(key, 0, tcell.ModNone))
		if got.Type != IntentButton || got.Button != button {
			t.Errorf("key %v: got %+v, want %s", key, got, button)
		}
	}
}

func TestMouseTransitions(t *testing.T) {
	tr := NewTranslator(nil)

	steps := []struct {
		ev   *tcell.EventMouse
		want IntentType
		held bool
	}{
		{tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone), IntentPointerMove, false},
		{tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone), IntentPointerDown, false},
		{tcell.NewEventMouse(12, 4, tcell.Button1, tcell.ModNone), IntentPointerMove, true},
		{tcell.NewEventMouse(20, 4, tcell.ButtonNone, tcell.ModNone), IntentPointerUp, false},
		{tcell.NewEventMouse(20, 4, tcell.ButtonNone, tcell.ModNone), IntentPointerMove, false},
	}
	for i, s := range steps {
		got := tr.Translate(s.ev)
		x, y := s.ev.Position()
		if got.Type != s.want || got.Held != s.held || got.X != x || got.Y != y {
			t.Errorf("step %d: got %+v, want type %v held %v", i, got, s.want, s.held)
		}
	}
}

func TestFocusAndResize(t *testing.T) {
	tr := NewTranslator(nil)
	if got := tr.Translate(tcell.NewEventFocus(false)); got.Type != IntentBlur {
		t.Errorf("expected blur, got %+v", got)
	}
	if got := tr.Translate(tcell.NewEventFocus(true)); got.Type != IntentFocus {
		t.Errorf("expected focus, got %+v", got)
	}
	if got := tr.Translate(tcell.NewEventResize(80, 24)); got.Type != IntentResize {
		t.Errorf("expected resize, got %+v", got)
	}
}

func TestActivity(t *testing.T) {
	if (Intent{Type: IntentResize}).Activity() {
		t.Error("resize is not user activity")
	}
	if !(Intent{Type: IntentPointerMove}).Activity() {
		t.Error("pointer motion is user activity")
	}
}
