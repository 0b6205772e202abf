// Package loop provides the game loop, its state machine and the terminal
// runner that drives it.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/input"
	loopconfig "github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/scene"
)

// Ensure the retained scene can back a game.
var _ Surface = (*scene.Scene)(nil)

// RunOptions configures a terminal run.
type RunOptions struct {
	// Tuning defaults to config.DefaultTuning() when zero.
	Tuning       config.Tuning
	Rand         object.RandSource
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
	Clock        Clock
}

// Run plays the game on a terminal with the standard Input → Update → Draw
// cycle until the player quits, the input ends or ctx is canceled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts RunOptions) error {
	tuning := opts.Tuning
	if tuning == (config.Tuning{}) {
		tuning = config.DefaultTuning()
	}
	if err := tuning.Validate(); err != nil {
		return fmt.Errorf("loop: %w", err)
	}
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	field := object.NewField(tuning)
	sc := scene.New(field)
	frames := NewFrameQueue(opts.Clock)
	game, err := NewGame(sc, frames, Options{
		Difficulty: tuning.Difficulty,
		Rand:       opts.Rand,
		Logger:     opts.Logger,
	})
	if err != nil {
		return err
	}

	// Stops the input goroutine once the game is over.
	streamCtx, stopStream := context.WithCancel(ctx)
	defer stopStream()
	stream := input.StartStream(streamCtx, r)
	out := draw.NewChunkWriter(w)
	canvas := draw.NewScaledCanvas(1, 1, field.Width, field.Height)

	draw.HideCursor(out)
	draw.ClearScreen(out)
	defer func() {
		draw.ClearScreen(out)
		draw.ShowCursor(out)
		_ = out.Flush()
	}()

	game.Initialize()

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		for _, k := range input.ReadKeys(stream) {
			if k == input.KeyQuit {
				return nil
			}
			game.HandleKey(k)
		}

		// ===== UPDATE PHASE =====
		frames.Tick()

		// ===== DRAW PHASE =====
		termWidth, termHeight, err := termSize()
		if err != nil {
			return fmt.Errorf("loop: terminal size: %w", err)
		}
		if err := drawFrame(out, canvas, sc, termWidth, termHeight); err != nil {
			return fmt.Errorf("loop: draw: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < loopconfig.TargetFrameTime {
			time.Sleep(loopconfig.TargetFrameTime - elapsed)
		}
	}
}
