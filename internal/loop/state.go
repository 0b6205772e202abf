package loop

import (
	"time"

	"github.com/tomz197/dodger/internal/config"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateRunning  GameState = iota // Obstacles fall, input moves the player
	GameStateGameOver                  // Frozen until the restart key
)

func (s GameState) String() string {
	switch s {
	case GameStateRunning:
		return "running"
	case GameStateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// RunState holds the counters of a single run. It is reset on every
// initialization.
type RunState struct {
	Score         int
	Level         int
	FallSpeed     float64       // Logical units per frame
	SpawnInterval time.Duration // Minimum gap between spawns
	LastSpawn     time.Duration // Frame timestamp of the latest spawn
	Started       bool          // Set by the first frame of the run
	GameState     GameState
}

// NewRunState creates the initial run state for a difficulty tuning.
func NewRunState(d config.DifficultyTuning) RunState {
	return RunState{
		FallSpeed:     d.InitialFallSpeed,
		SpawnInterval: d.InitialSpawnInterval,
		GameState:     GameStateRunning,
	}
}

// IsOver reports whether the run has ended.
func (r RunState) IsOver() bool {
	return r.GameState == GameStateGameOver
}
