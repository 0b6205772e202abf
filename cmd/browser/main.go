// Command browser runs the game with ebiten. Build it for the web with
//
//	GOOS=js GOARCH=wasm go build -o web/dodger.wasm ./cmd/browser
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/dodger/internal/browser"
	"github.com/tomz197/dodger/internal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dodger"})

	// Without a filesystem (js/wasm) only the built-in tuning is available.
	tuning := config.DefaultTuning()
	if path := os.Getenv("DODGER_TUNING"); path != "" {
		t, err := config.LoadTuning(path)
		if err != nil {
			logger.Fatal("failed to load tuning", "err", err)
		}
		tuning = t
	}

	game, err := browser.New(tuning, logger)
	if err != nil {
		logger.Fatal("failed to create game", "err", err)
	}

	w, h := game.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Dodger")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
