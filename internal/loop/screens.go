package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/scene"
)

// hudRows is the number of terminal rows above the field kept for the HUD.
const hudRows = 1

// drawFrame clears the screen, draws the scene and flushes the frame.
func drawFrame(out *draw.ChunkWriter, canvas *draw.Canvas, sc *scene.Scene, termWidth, termHeight int) error {
	draw.ClearScreen(out)

	canvas.Fit(termWidth, termHeight, hudRows)
	canvas.Clear()
	for _, r := range sc.Obstacles() {
		canvas.FillRect(r)
	}
	canvas.FillRect(sc.Player())

	if err := canvas.Render(out); err != nil {
		return err
	}
	if err := canvas.RenderBorder(out); err != nil {
		return err
	}

	drawHUD(out, sc, termWidth)
	if over, score := sc.GameOver(); over {
		drawGameOverScreen(out, canvas, sc, score)
	}

	return out.Flush()
}

// drawHUD draws the score and level above the field.
func drawHUD(w io.Writer, sc *scene.Scene, termWidth int) {
	score, level := sc.Score()

	scoreText := fmt.Sprintf("Score: %d", score)
	draw.MoveCursor(w, 2, 1)
	fmt.Fprint(w, scoreText)

	levelText := fmt.Sprintf("Level: %d", level+1)
	draw.MoveCursor(w, max(termWidth-len(levelText)-1, 1), 1)
	fmt.Fprint(w, levelText)
}

// drawGameOverScreen draws the final score and restart prompt over the field.
func drawGameOverScreen(w io.Writer, canvas *draw.Canvas, sc *scene.Scene, score int) {
	field := sc.Field()
	centerX, centerY := canvas.LogicalToTerminal(field.Width/2, field.Height/2)

	draw.WriteCentered(w, centerX, centerY-2, "GAME OVER")
	draw.WriteCentered(w, centerX, centerY, fmt.Sprintf("Score: %d", score))
	draw.WriteCentered(w, centerX, centerY+2, "Press SPACE to restart")
	draw.WriteCentered(w, centerX, centerY+3, "Q to quit")
}
