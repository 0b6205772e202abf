package loop

import (
	"slices"
	"time"
)

// FrameQueue is a Scheduler that runs callbacks when Tick is called.
// Frontends tick it once per display frame.
type FrameQueue struct {
	nextID  FrameID
	pending []queuedFrame
	running []queuedFrame // Batch being run by TickAt
	start   time.Time
	clock   Clock
	started bool
}

type queuedFrame struct {
	id FrameID
	fn FrameFunc
}

// NewFrameQueue creates a queue whose timestamps are measured from the
// first Tick using clock. A nil clock uses wall time.
func NewFrameQueue(clock Clock) *FrameQueue {
	if clock == nil {
		clock = realClock{}
	}
	return &FrameQueue{clock: clock}
}

// RequestFrame schedules fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, queuedFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a scheduled callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	q.pending = slices.DeleteFunc(q.pending, func(f queuedFrame) bool {
		return f.id == id
	})
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
		}
	}
}

// Pending returns the number of scheduled callbacks.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Tick runs every callback scheduled before this call, passing the time
// elapsed since the first Tick. Callbacks requested while ticking run on
// the next Tick.
func (q *FrameQueue) Tick() {
	now := q.clock.Now()
	if !q.started {
		q.start = now
		q.started = true
	}
	q.TickAt(now.Sub(q.start))
}

// TickAt runs the scheduled callbacks with an explicit timestamp.
func (q *FrameQueue) TickAt(now time.Duration) {
	q.running, q.pending = q.pending, nil
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn(now)
		}
	}
	q.running = nil
}
