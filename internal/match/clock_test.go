package match

import (
	"testing"
	"time"
)

func TestClockAccumulatesPerSide(t *testing.T) {
	c := NewClock()
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	c.Start(White, t0)
	c.Stop(White, t0.Add(3*time.Second))

	c.Start(Black, t0.Add(3*time.Second))
	c.Stop(Black, t0.Add(5*time.Second))

	c.Start(White, t0.Add(5*time.Second))
	c.Stop(White, t0.Add(6*time.Second))

	if got := c.Elapsed(White, t0.Add(10*time.Second)); got != 4*time.Second {
		t.Fatalf("white elapsed = %v, want 4s", got)
	}
	if got := c.Elapsed(Black, t0.Add(10*time.Second)); got != 2*time.Second {
		t.Fatalf("black elapsed = %v, want 2s", got)
	}
}

func TestClockRunningSideKeepsTicking(t *testing.T) {
	c := NewClock()
	t0 := time.Now()
	c.Start(Black, t0)

	a := c.Elapsed(Black, t0.Add(time.Second))
	b := c.Elapsed(Black, t0.Add(2*time.Second))
	if a != time.Second || b != 2*time.Second {
		t.Fatalf("running reads = %v, %v; want 1s, 2s", a, b)
	}
	if c.Elapsed(White, t0.Add(2*time.Second)) != 0 {
		t.Fatalf("idle side accumulated time")
	}
}

func TestClockStopWrongSideIsNoop(t *testing.T) {
	c := NewClock()
	t0 := time.Now()
	c.Start(White, t0)
	c.Stop(Black, t0.Add(time.Second))

	if side, on := c.Running(); !on || side != White {
		t.Fatalf("Running() = %v, %v; want White running", side, on)
	}
	if got := c.Elapsed(White, t0.Add(2*time.Second)); got != 2*time.Second {
		t.Fatalf("white elapsed = %v, want 2s", got)
	}
}
