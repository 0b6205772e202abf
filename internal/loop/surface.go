package loop

import (
	"errors"
	"time"

	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/physics"
)

var (
	ErrNoSurface   = errors.New("loop: render surface is required")
	ErrNoScheduler = errors.New("loop: frame scheduler is required")
)

// Surface is the render target the game drives. It owns every visual
// element; the game only tells it what changed.
type Surface interface {
	// Field returns the play-field geometry.
	Field() object.Field

	AddObstacle(id object.ObstacleID, bounds physics.Rect)
	MoveObstacle(id object.ObstacleID, bounds physics.Rect)
	RemoveObstacle(id object.ObstacleID)
	MovePlayer(bounds physics.Rect)

	SetScore(score, level int)
	ShowGameOver(score int)
	HideGameOver()
}

// FrameFunc is called once per display frame with a monotonically
// increasing timestamp.
type FrameFunc func(now time.Duration)

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler schedules callbacks for the next display frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// Clock is the time source frame timestamps are derived from.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
