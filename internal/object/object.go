// Package object holds the game entities: the player, falling obstacles
// and the spawner that creates them.
package object

import (
	"math/rand"

	"github.com/tomz197/dodger/internal/config"
)

// Field describes the play-field geometry in logical units.
type Field struct {
	Width  float64
	Height float64

	PlayerWidth  float64
	PlayerHeight float64
	PlayerY      float64 // Top edge of the player sprite
	PlayerStep   float64 // Distance moved per key press

	ObstacleWidth  float64
	ObstacleHeight float64
}

// NewField derives the field geometry from a tuning.
func NewField(t config.Tuning) Field {
	return Field{
		Width:          t.Field.Width,
		Height:         t.Field.Height,
		PlayerWidth:    t.Player.Width,
		PlayerHeight:   t.Player.Height,
		PlayerY:        t.Field.Height - t.Player.Height - t.Player.Margin,
		PlayerStep:     t.Player.Step,
		ObstacleWidth:  t.Obstacle.Width,
		ObstacleHeight: t.Obstacle.Height,
	}
}

// MaxPlayerX is the rightmost allowed player position.
func (f Field) MaxPlayerX() float64 {
	return f.Width - f.PlayerWidth
}

// MaxObstacleX is the rightmost allowed obstacle spawn position.
func (f Field) MaxObstacleX() float64 {
	return f.Width - f.ObstacleWidth
}

// RandSource yields uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// globalRand uses the math/rand top-level source.
type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}
