// Package config centralizes all tunable game parameters.
package config

import "time"

// Field dimensions in logical units.
// Renderers scale these to the terminal or browser canvas.
const (
	FieldWidth  = 400
	FieldHeight = 600
)

// Player
const (
	PlayerWidth  = 40
	PlayerHeight = 40
	PlayerMargin = 10 // Gap between the player and the field bottom
	PlayerStep   = 15 // Logical units per key press
)

// Obstacles
const (
	ObstacleWidth  = 50
	ObstacleHeight = 50
)

// Difficulty
const (
	InitialFallSpeed     = 3.0 // Logical units per frame
	FallSpeedIncrement   = 0.5
	InitialSpawnInterval = 1000 * time.Millisecond
	SpawnIntervalStep    = 100 * time.Millisecond
	MinSpawnInterval     = 500 * time.Millisecond
	LevelEvery           = 5 // Points per difficulty step
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
