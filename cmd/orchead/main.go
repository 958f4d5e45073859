package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/orchead/app"
	"github.com/lixenwraith/orchead/audio"
	"github.com/lixenwraith/orchead/config"
	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/core"
	"github.com/lixenwraith/orchead/logger"
	"github.com/lixenwraith/orchead/metrics"
	"github.com/lixenwraith/orchead/remote"
	"github.com/lixenwraith/orchead/session"
	"github.com/lixenwraith/orchead/store"
	"github.com/lixenwraith/orchead/tally"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "orchead: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg := config.Default()
	return buildCLI(&cfg, os.Stdout).ParseAndRun(context.Background(), os.Args[1:])
}

// newFlagSet registers every setting; each command parses its own copy
func newFlagSet(name string, cfg *config.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	return fs
}

func buildCLI(cfg *config.Config, out io.Writer) *ffcli.Command {
	envOpts := []ff.Option{ff.WithEnvVarPrefix(config.EnvPrefix)}

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "orchead run [flags]",
		ShortHelp:  "Summon the orc head (default)",
		FlagSet:    newFlagSet("orchead run", cfg),
		Options:    envOpts,
		Exec:       func(ctx context.Context, _ []string) error { return execRun(ctx, *cfg) },
	}

	statsCmd := &ffcli.Command{
		Name:       "stats",
		ShortUsage: "orchead stats [flags]",
		ShortHelp:  "Print the stored kill and visitor counters",
		FlagSet:    newFlagSet("orchead stats", cfg),
		Options:    envOpts,
		Exec:       func(ctx context.Context, _ []string) error { return execStats(ctx, *cfg, out) },
	}

	resetCmd := &ffcli.Command{
		Name:       "reset",
		ShortUsage: "orchead reset [flags]",
		ShortHelp:  "Zero the counters and forget this session",
		FlagSet:    newFlagSet("orchead reset", cfg),
		Options:    envOpts,
		Exec:       func(ctx context.Context, _ []string) error { return execReset(ctx, *cfg, out) },
	}

	return &ffcli.Command{
		ShortUsage: "orchead [flags] <subcommand>",
		ShortHelp:  "An orc head for your terminal",
		LongHelp: "Controls:\n" +
			"  Click the orc     Slay it (counts a kill)\n" +
			"  Drag              Swipe left, right, up or down\n" +
			"  Type words        grond, isengard, precious, mellon, ...\n" +
			"  F1-F4             Summon, Horn, Chaos, Party\n" +
			"  Ctrl+S            Toggle sound\n" +
			"  Esc, Ctrl+Q       Leave (if Isildur lets you)\n\n" +
			"Every flag can also be set as " + config.EnvPrefix + "_<FLAG> in the environment or a .env file.",
		FlagSet:     newFlagSet("orchead", cfg),
		Options:     envOpts,
		Subcommands: []*ffcli.Command{runCmd, statsCmd, resetCmd},
		Exec:        func(ctx context.Context, _ []string) error { return execRun(ctx, *cfg) },
	}
}

func execRun(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	content, err := config.LoadContent(cfg.ContentPath)
	if err != nil {
		return err
	}

	logOut, err := logger.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	log := logger.New(cfg.LogLevel, cfg.LogFormat, logOut)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sid := session.ID()
	st, flags, err := store.Open(ctx, cfg.StoreOptions(sid))
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	defer st.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	var sound app.Sound
	sm := audio.NewSoundManager(log)
	if err := sm.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", "error", err)
	} else {
		defer sm.Cleanup()
		sound = sm
	}

	var met *metrics.Metrics
	if cfg.Listen != "" {
		met = metrics.New()
	}

	a, err := app.New(ctx, app.Options{
		Config:    cfg,
		Content:   content,
		Screen:    screen,
		Store:     st,
		Flags:     flags,
		Sound:     sound,
		Metrics:   met,
		Log:       log,
		SessionID: sid,
	})
	if err != nil {
		return err
	}

	if cfg.Listen != "" {
		srv := remote.New(a, log, met)
		core.Go(func() {
			if err := srv.ListenAndServe(ctx, cfg.Listen); err != nil {
				log.Error("remote control stopped", "addr", cfg.Listen, "error", err)
			}
		})
		log.Info("remote control listening", "addr", cfg.Listen)
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-hup:
				log.Info("SIGHUP received, reloading content", "path", cfg.ContentPath)
				a.Reload()
			case <-ctx.Done():
				return
			}
		}
	}()

	return a.Run(ctx)
}

func execStats(ctx context.Context, cfg config.Config, out io.Writer) error {
	st, _, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	kills, err := st.Get(ctx, constants.KeyKills)
	if err != nil {
		return fmt.Errorf("read kills: %w", err)
	}
	visitors, err := st.Get(ctx, constants.KeyVisitors)
	if err != nil {
		return fmt.Errorf("read visitors: %w", err)
	}
	fmt.Fprintf(out, "Orcs slain: %s\n", tally.FormatKills(kills))
	fmt.Fprintf(out, "Visitors:   %s\n", tally.FormatVisitors(visitors))
	return nil
}

func execReset(ctx context.Context, cfg config.Config, out io.Writer) error {
	st, flags, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, key := range []string{constants.KeyKills, constants.KeyVisitors} {
		if err := st.Set(ctx, key, 0); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	if err := flags.Clear(ctx, constants.KeySessionFlag); err != nil {
		return fmt.Errorf("clear session flag: %w", err)
	}
	fmt.Fprintln(out, "The orc head forgets.")
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, store.Flags, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	st, flags, err := store.Open(ctx, cfg.StoreOptions(session.ID()))
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	return st, flags, nil
}
