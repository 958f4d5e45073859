package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/orchead/config"
	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/session"
	"github.com/lixenwraith/orchead/store"
)

func TestEnvAndFlagsResolve(t *testing.T) {
	t.Setenv("ORCHEAD_STORE", "memory")
	t.Setenv("ORCHEAD_LOG_LEVEL", "debug")

	cfg := config.Default()
	root := buildCLI(&cfg, &bytes.Buffer{})
	if err := root.Parse([]string{"stats", "--log-level", "warn"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Backend != store.BackendMemory {
		t.Errorf("env var not applied, backend %q", cfg.Backend)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("flag should override env, got %q", cfg.LogLevel)
	}
}

func TestStatsAndReset(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "state.toml")
	t.Setenv("TMPDIR", dir)
	t.Setenv(session.EnvID, "cli-test")

	st, err := store.OpenFile(statePath)
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	ctx := context.Background()
	if err := st.Set(ctx, constants.KeyKills, 1234); err != nil {
		t.Fatal(err)
	}
	if err := st.Set(ctx, constants.KeyVisitors, 7); err != nil {
		t.Fatal(err)
	}

	// Pre-set the marker so reset has something to clear
	flags := store.NewFileFlags(os.TempDir(), "cli-test")
	if _, err := flags.SetOnce(ctx, constants.KeySessionFlag); err != nil {
		t.Fatal(err)
	}

	args := []string{"--store", "file", "--state", statePath}

	var out bytes.Buffer
	cfg := config.Default()
	if err := buildCLI(&cfg, &out).ParseAndRun(ctx, append([]string{"stats"}, args...)); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out.String(), "Orcs slain: 1,234") || !strings.Contains(out.String(), "000007") {
		t.Errorf("unexpected stats output:\n%s", out.String())
	}

	out.Reset()
	cfg = config.Default()
	if err := buildCLI(&cfg, &out).ParseAndRun(ctx, append([]string{"reset"}, args...)); err != nil {
		t.Fatalf("reset: %v", err)
	}
	fresh, err := flags.SetOnce(ctx, constants.KeySessionFlag)
	if err != nil || !fresh {
		t.Errorf("reset did not clear the session flag (fresh=%v, err=%v)", fresh, err)
	}

	out.Reset()
	cfg = config.Default()
	if err := buildCLI(&cfg, &out).ParseAndRun(ctx, append([]string{"stats"}, args...)); err != nil {
		t.Fatalf("stats after reset: %v", err)
	}
	if !strings.Contains(out.String(), "Orcs slain: 0") {
		t.Errorf("counters not reset:\n%s", out.String())
	}
}

func TestUnknownBackendRejected(t *testing.T) {
	cfg := config.Default()
	err := buildCLI(&cfg, &bytes.Buffer{}).ParseAndRun(context.Background(), []string{"stats", "--store", "etcd"})
	if err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
