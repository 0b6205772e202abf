package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/object"
)

// Options configures a Game.
type Options struct {
	// Difficulty defaults to config.DefaultTuning().Difficulty when zero.
	Difficulty config.DifficultyTuning
	// Rand picks obstacle spawn positions. Nil uses math/rand.
	Rand object.RandSource
	// Logger defaults to a logger that discards output.
	Logger *log.Logger
}

// Game owns the state of a single-player run and advances it one frame
// at a time through the Scheduler.
type Game struct {
	Run       RunState
	Player    *object.Player
	Obstacles []*object.Obstacle // Spawn order

	difficulty config.DifficultyTuning
	field      object.Field
	surface    Surface
	scheduler  Scheduler
	spawner    *object.ObstacleSpawner
	logger     *log.Logger
	frame      FrameID
}

// NewGame creates a game bound to its render surface and frame scheduler.
// The game does not start until Initialize is called.
func NewGame(surface Surface, scheduler Scheduler, opts Options) (*Game, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if scheduler == nil {
		return nil, ErrNoScheduler
	}

	difficulty := opts.Difficulty
	if difficulty == (config.DifficultyTuning{}) {
		difficulty = config.DefaultTuning().Difficulty
	}
	if err := difficulty.Validate(); err != nil {
		return nil, fmt.Errorf("loop: invalid difficulty: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := surface.Field()
	return &Game{
		Run:        NewRunState(difficulty),
		Player:     object.NewPlayer(field),
		difficulty: difficulty,
		field:      field,
		surface:    surface,
		scheduler:  scheduler,
		spawner:    object.NewObstacleSpawner(field, opts.Rand),
		logger:     logger,
	}, nil
}

// Initialize resets the run, clears the field and (re)starts the frame
// loop. Any frame scheduled by a previous run is canceled first.
func (g *Game) Initialize() {
	g.Run = NewRunState(g.difficulty)

	g.Player.Center()
	g.surface.MovePlayer(g.Player.Bounds())

	for i, o := range g.Obstacles {
		g.surface.RemoveObstacle(o.ID)
		g.Obstacles[i] = nil
	}
	g.Obstacles = g.Obstacles[:0]

	g.surface.SetScore(g.Run.Score, g.Run.Level)
	g.surface.HideGameOver()

	g.scheduler.CancelFrame(g.frame)
	g.frame = g.scheduler.RequestFrame(g.frameTick)

	g.logger.Info("game initialized")
}

// HandleKey applies a key press. Movement keys only act while running;
// the restart key only acts after game over.
func (g *Game) HandleKey(k input.Key) {
	switch g.Run.GameState {
	case GameStateRunning:
		switch k {
		case input.KeyLeft:
			g.movePlayer(object.DirectionLeft)
		case input.KeyRight:
			g.movePlayer(object.DirectionRight)
		}
	case GameStateGameOver:
		if k == input.KeyRestart {
			g.Initialize()
		}
	}
}

func (g *Game) movePlayer(dir object.Direction) {
	g.Player.Move(dir)
	g.surface.MovePlayer(g.Player.Bounds())
}

// Field returns the play-field geometry the game was created with.
func (g *Game) Field() object.Field {
	return g.field
}
