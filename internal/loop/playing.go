package loop

import (
	"time"

	"github.com/tomz197/dodger/internal/object"
)

// frameTick runs one frame of the running state:
// spawn-check, advance and score, collision, schedule next frame.
// Scoring happens before collision so both see the same obstacles.
func (g *Game) frameTick(now time.Duration) {
	if g.Run.IsOver() {
		return
	}

	// Spawn pacing counts from the first frame of each run, so a restart
	// waits the same interval as a fresh game.
	if !g.Run.Started {
		g.Run.Started = true
		g.Run.LastSpawn = now
	}

	g.spawnObstacles(now)
	g.advanceObstacles()

	if g.checkCollision() {
		g.endRun()
		return
	}

	g.frame = g.scheduler.RequestFrame(g.frameTick)
}

// spawnObstacles creates one obstacle once the spawn interval has elapsed.
func (g *Game) spawnObstacles(now time.Duration) {
	if !object.Due(now, g.Run.LastSpawn, g.Run.SpawnInterval) {
		return
	}
	o := g.spawner.Spawn()
	g.Obstacles = append(g.Obstacles, o)
	g.surface.AddObstacle(o.ID, o.Bounds())
	g.Run.LastSpawn = now
}

// advanceObstacles moves every obstacle down and removes the ones that
// left the field, awarding one point each.
func (g *Game) advanceObstacles() {
	despawned := 0

	kept := g.Obstacles[:0] // reuse backing array
	for _, o := range g.Obstacles {
		if o.Fall(g.Run.FallSpeed, g.field.Height) {
			g.surface.RemoveObstacle(o.ID)
			despawned++
			continue
		}
		g.surface.MoveObstacle(o.ID, o.Bounds())
		kept = append(kept, o)
	}
	clear(g.Obstacles[len(kept):])
	g.Obstacles = kept

	if despawned == 0 {
		return
	}
	for range despawned {
		g.awardPoint()
	}
	g.surface.SetScore(g.Run.Score, g.Run.Level)
}

// awardPoint adds a single point and escalates the difficulty each time
// the score reaches a multiple of LevelEvery.
func (g *Game) awardPoint() {
	g.Run.Score++
	if g.Run.Score%g.difficulty.LevelEvery == 0 {
		g.escalate()
	}
}

// escalate speeds obstacles up and shortens the spawn interval down to
// its floor.
func (g *Game) escalate() {
	g.Run.Level++
	g.Run.FallSpeed += g.difficulty.FallSpeedIncrement
	g.Run.SpawnInterval = max(g.difficulty.MinSpawnInterval, g.Run.SpawnInterval-g.difficulty.SpawnIntervalStep)

	g.logger.Info("level up",
		"level", g.Run.Level,
		"score", g.Run.Score,
		"speed", g.Run.FallSpeed,
		"interval", g.Run.SpawnInterval)
}

// endRun switches to game over. No further frame is scheduled.
func (g *Game) endRun() {
	g.Run.GameState = GameStateGameOver
	g.surface.ShowGameOver(g.Run.Score)
	g.logger.Info("collision detected", "score", g.Run.Score, "level", g.Run.Level)
}
