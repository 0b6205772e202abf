package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load[config.Game]()
	if err != nil {
		return err
	}
	tuning, err := cfg.Tuning()
	if err != nil {
		return err
	}

	// The screen belongs to the game, so logs only go to DODGER_LOG_FILE.
	logger, closeLog, err := cfg.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.RunOptions{
		Tuning: tuning,
		Logger: logger,
	})
}
