package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var out bytes.Buffer
	code := -1
	prevOut, prevExit := crashOut, crashExit
	crashOut = &out
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashScreen(nil)
	})
	return &out, &code
}

func TestHandleCrashNil(t *testing.T) {
	out, code := captureCrash(t)
	HandleCrash(nil)
	if out.Len() != 0 || *code != -1 {
		t.Error("nil recover value should be ignored")
	}
}

func TestHandleCrashRestoresScreen(t *testing.T) {
	out, code := captureCrash(t)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to initialize simulation screen: %v", err)
	}
	SetCrashScreen(screen)

	HandleCrash("orc fell off the stick")

	if *code != 1 {
		t.Errorf("expected exit code 1, got %d", *code)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: orc fell off the stick") {
		t.Errorf("crash report missing, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Stack Trace:") {
		t.Error("stack trace missing")
	}

	crashMu.Lock()
	defer crashMu.Unlock()
	if crashScreen != nil {
		t.Error("screen should be released after a crash")
	}
}

func TestGoRecovers(t *testing.T) {
	out, code := captureCrash(t)
	done := make(chan struct{})
	crashExit = func(c int) {
		*code = c
		close(done)
	}

	Go(func() { panic("boom") })
	<-done

	if *code != 1 || !strings.Contains(out.String(), "boom") {
		t.Errorf("panic not routed to crash handler: code=%d out=%q", *code, out.String())
	}
}
