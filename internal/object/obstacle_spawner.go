package object

import "time"

// ObstacleSpawner creates obstacles at random horizontal offsets.
type ObstacleSpawner struct {
	field  Field
	rng    RandSource
	nextID ObstacleID
}

// NewObstacleSpawner creates a spawner for the field. A nil rng falls back
// to the math/rand global source.
func NewObstacleSpawner(f Field, rng RandSource) *ObstacleSpawner {
	if rng == nil {
		rng = globalRand{}
	}
	return &ObstacleSpawner{
		field: f,
		rng:   rng,
	}
}

// Due reports whether more than interval has elapsed since lastSpawn.
func Due(now, lastSpawn, interval time.Duration) bool {
	return now-lastSpawn > interval
}

// Spawn creates a new obstacle at the top of the field.
func (s *ObstacleSpawner) Spawn() *Obstacle {
	s.nextID++
	return &Obstacle{
		ID:     s.nextID,
		X:      s.rng.Float64() * s.field.MaxObstacleX(),
		Y:      0,
		Width:  s.field.ObstacleWidth,
		Height: s.field.ObstacleHeight,
	}
}
