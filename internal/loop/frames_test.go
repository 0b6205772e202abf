package loop

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestFrameQueueRunsOncePerTick(t *testing.T) {
	q := NewFrameQueue(nil)

	var calls []time.Duration
	var tick FrameFunc
	tick = func(now time.Duration) {
		calls = append(calls, now)
		q.RequestFrame(tick)
	}
	q.RequestFrame(tick)

	q.TickAt(10 * time.Millisecond)
	q.TickAt(20 * time.Millisecond)

	if len(calls) != 2 {
		t.Fatalf("callback ran %d times, want 2", len(calls))
	}
	if calls[0] != 10*time.Millisecond || calls[1] != 20*time.Millisecond {
		t.Errorf("timestamps = %v", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("pending = %d, want 1", q.Pending())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue(nil)

	ran := false
	id := q.RequestFrame(func(time.Duration) { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id + 100) // unknown ids are ignored

	q.TickAt(0)
	if ran {
		t.Error("canceled callback ran")
	}
	if q.Pending() != 0 {
		t.Errorf("pending = %d, want 0", q.Pending())
	}
}

func TestFrameQueueCancelDuringTick(t *testing.T) {
	q := NewFrameQueue(nil)

	ranSecond := false
	var second FrameID
	q.RequestFrame(func(time.Duration) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Duration) { ranSecond = true })

	q.TickAt(0)
	if ranSecond {
		t.Error("callback canceled earlier in the same tick still ran")
	}
}

func TestFrameQueueTickUsesClock(t *testing.T) {
	clock := &stepClock{now: time.Unix(1000, 0), step: 16 * time.Millisecond}
	q := NewFrameQueue(clock)

	var got []time.Duration
	var tick FrameFunc
	tick = func(now time.Duration) {
		got = append(got, now)
		q.RequestFrame(tick)
	}
	q.RequestFrame(tick)

	q.Tick()
	q.Tick()
	q.Tick()

	want := []time.Duration{0, 16 * time.Millisecond, 32 * time.Millisecond}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: now = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRunStopsWhenInputEnds(t *testing.T) {
	var out bytes.Buffer
	opts := RunOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 30, nil },
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Run(ctx, bufio.NewReader(strings.NewReader("")), &out, opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run did not return after input ended")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Errorf("cursor not restored on exit")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	var out bytes.Buffer
	opts := RunOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 30, nil },
	}

	// Input never ends.
	pr := blockingReader{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, bufio.NewReader(pr), &out, opts); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunRejectsInvalidTuning(t *testing.T) {
	opts := RunOptions{}
	opts.Tuning.Field.Width = -1

	err := Run(context.Background(), bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, opts)
	if err == nil {
		t.Fatal("expected error for invalid tuning")
	}
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
