package object

import "github.com/tomz197/dodger/internal/physics"

// ObstacleID identifies an obstacle and its visual element on a surface.
type ObstacleID uint64

// Obstacle is a block falling from the top of the field.
type Obstacle struct {
	ID     ObstacleID
	X, Y   float64 // Top-left corner; X is fixed at spawn
	Width  float64
	Height float64
}

// Fall advances the obstacle by speed. Returns true once the obstacle
// has left the bottom of the field and should be removed.
func (o *Obstacle) Fall(speed, fieldHeight float64) (despawn bool) {
	o.Y += speed
	return o.Y > fieldHeight
}

// Bounds returns the obstacle's bounding box.
func (o *Obstacle) Bounds() physics.Rect {
	return physics.NewRect(o.X, o.Y, o.Width, o.Height)
}
