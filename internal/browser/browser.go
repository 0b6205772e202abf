// Package browser runs the game with ebiten. Built for js/wasm it plays in
// a web page; on desktop it opens a window of the same size.
package browser

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/physics"
	"github.com/tomz197/dodger/internal/scene"
)

var (
	backgroundColor = color.RGBA{R: 0x11, G: 0x11, B: 0x1a, A: 0xff}
	playerColor     = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	obstacleColor   = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	overlayColor    = color.RGBA{A: 0xb0}
)

// keyBindings maps ebiten keys to game keys.
var keyBindings = []struct {
	key ebiten.Key
	to  input.Key
}{
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeySpace, input.KeyRestart},
}

// Game adapts a loop.Game to ebiten.Game.
type Game struct {
	scene  *scene.Scene
	frames *loop.FrameQueue
	game   *loop.Game
}

// New creates an initialized game for the tuning.
func New(tuning config.Tuning, logger *log.Logger) (*Game, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("browser: %w", err)
	}

	sc := scene.New(object.NewField(tuning))
	frames := loop.NewFrameQueue(nil)
	game, err := loop.NewGame(sc, frames, loop.Options{
		Difficulty: tuning.Difficulty,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	game.Initialize()

	return &Game{scene: sc, frames: frames, game: game}, nil
}

// Update handles key presses and runs the scheduled game frame.
func (g *Game) Update() error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.game.HandleKey(b.to)
		}
	}
	g.frames.Tick()
	return nil
}

// Draw paints the scene.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, r := range g.scene.Obstacles() {
		fillRect(screen, r, obstacleColor)
	}
	fillRect(screen, g.scene.Player(), playerColor)

	score, level := g.scene.Score()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", level+1), 8, 24)

	if over, final := g.scene.GameOver(); over {
		field := g.scene.Field()
		vector.DrawFilledRect(screen, 0, 0, float32(field.Width), float32(field.Height), overlayColor, false)

		cx, cy := int(field.Width/2), int(field.Height/2)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", cx-27, cy-32)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", final), cx-27, cy-8)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to restart", cx-66, cy+16)
	}
}

// Layout keeps the logical field size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	field := g.scene.Field()
	return int(field.Width), int(field.Height)
}

// Size returns the window size for the field.
func (g *Game) Size() (int, int) {
	return g.Layout(0, 0)
}

func fillRect(dst *ebiten.Image, r physics.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), clr, false)
}
