package object

import "github.com/tomz197/dodger/internal/physics"

// Direction is a horizontal movement request.
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// Player is the sprite dodging obstacles along the bottom of the field.
type Player struct {
	X      float64 // Left edge, always within [0, MaxX]
	Y      float64 // Top edge, fixed for the whole run
	Width  float64
	Height float64
	Step   float64 // Distance per key press
	MaxX   float64
}

// NewPlayer creates a player centered horizontally on the field.
func NewPlayer(f Field) *Player {
	p := &Player{
		Y:      f.PlayerY,
		Width:  f.PlayerWidth,
		Height: f.PlayerHeight,
		Step:   f.PlayerStep,
		MaxX:   f.MaxPlayerX(),
	}
	p.Center()
	return p
}

// Center moves the player to the middle of the field.
func (p *Player) Center() {
	p.X = p.MaxX / 2
}

// Move shifts the player one step in dir and clamps it to the field.
func (p *Player) Move(dir Direction) {
	p.X = physics.Clamp(p.X+float64(dir)*p.Step, 0, p.MaxX)
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() physics.Rect {
	return physics.NewRect(p.X, p.Y, p.Width, p.Height)
}
