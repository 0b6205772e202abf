package loop

import "github.com/tomz197/dodger/internal/physics"

// checkCollision reports whether the player overlaps any obstacle.
// Stops at the first hit.
func (g *Game) checkCollision() bool {
	player := g.Player.Bounds()
	for _, o := range g.Obstacles {
		if physics.Overlaps(player, o.Bounds()) {
			return true
		}
	}
	return false
}
