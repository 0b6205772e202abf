// Package scene keeps the retained visual state of a game: one element per
// obstacle, the player sprite, the score line and the game-over banner.
// Renderers read it once per frame; the game loop writes it through the
// loop.Surface methods.
package scene

import (
	"maps"
	"slices"

	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/physics"
)

// Scene is an in-memory render surface.
type Scene struct {
	field     object.Field
	player    physics.Rect
	obstacles map[object.ObstacleID]physics.Rect
	score     int
	level     int
	gameOver  bool
	final     int
}

// New creates an empty scene for the field.
func New(field object.Field) *Scene {
	return &Scene{
		field:     field,
		obstacles: make(map[object.ObstacleID]physics.Rect),
	}
}

// Field returns the play-field geometry.
func (s *Scene) Field() object.Field {
	return s.field
}

// AddObstacle creates the element for a new obstacle.
func (s *Scene) AddObstacle(id object.ObstacleID, bounds physics.Rect) {
	s.obstacles[id] = bounds
}

// MoveObstacle updates an existing element. Unknown ids are ignored.
func (s *Scene) MoveObstacle(id object.ObstacleID, bounds physics.Rect) {
	if _, ok := s.obstacles[id]; ok {
		s.obstacles[id] = bounds
	}
}

// RemoveObstacle releases an element.
func (s *Scene) RemoveObstacle(id object.ObstacleID) {
	delete(s.obstacles, id)
}

// MovePlayer updates the player sprite.
func (s *Scene) MovePlayer(bounds physics.Rect) {
	s.player = bounds
}

// SetScore updates the score line.
func (s *Scene) SetScore(score, level int) {
	s.score = score
	s.level = level
}

// ShowGameOver displays the banner with the final score.
func (s *Scene) ShowGameOver(score int) {
	s.gameOver = true
	s.final = score
}

// HideGameOver removes the banner.
func (s *Scene) HideGameOver() {
	s.gameOver = false
}

// Player returns the player sprite bounds.
func (s *Scene) Player() physics.Rect {
	return s.player
}

// Obstacles returns the obstacle elements in spawn order.
func (s *Scene) Obstacles() []physics.Rect {
	ids := slices.Sorted(maps.Keys(s.obstacles))
	rects := make([]physics.Rect, len(ids))
	for i, id := range ids {
		rects[i] = s.obstacles[id]
	}
	return rects
}

// ObstacleCount returns the number of live obstacle elements.
func (s *Scene) ObstacleCount() int {
	return len(s.obstacles)
}

// Score returns the displayed score and level.
func (s *Scene) Score() (score, level int) {
	return s.score, s.level
}

// GameOver reports whether the banner is shown and the score on it.
func (s *Scene) GameOver() (shown bool, score int) {
	return s.gameOver, s.final
}
