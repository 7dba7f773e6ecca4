package adventure

import "time"

// Clock is the read-only time source handed to entity behaviors. Behaviors
// must read time only through it so runs are reproducible under a
// deterministic clock.
type Clock interface {
	// Elapsed returns seconds since the first tick.
	Elapsed() float64
	// Delta returns seconds between the last two ticks.
	Delta() float64
	// Ticks returns the number of ticks so far.
	Ticks() int
}

// TickClock is a Clock the engine advances once per tick.
type TickClock interface {
	Clock
	Tick()
}

// SystemClock measures wall time with the monotonic clock.
type SystemClock struct {
	now     func() time.Time
	t0      time.Time
	last    time.Time
	elapsed float64
	delta   float64
	ticks   int
}

// NewSystemClock creates a clock starting now.
func NewSystemClock() *SystemClock {
	return newSystemClockAt(time.Now)
}

func newSystemClockAt(now func() time.Time) *SystemClock {
	t := now()
	return &SystemClock{now: now, t0: t, last: t}
}

// Tick captures the time since the previous tick as Delta.
func (c *SystemClock) Tick() {
	t := c.now()
	c.delta = t.Sub(c.last).Seconds()
	c.elapsed = t.Sub(c.t0).Seconds()
	c.last = t
	c.ticks++
}

func (c *SystemClock) Elapsed() float64 { return c.elapsed }
func (c *SystemClock) Delta() float64   { return c.delta }
func (c *SystemClock) Ticks() int       { return c.ticks }

// StepClock advances by a fixed Step seconds per tick. Useful for headless
// runs and tests.
type StepClock struct {
	Step    float64
	elapsed float64
	ticks   int
}

// NewStepClock creates a clock advancing step seconds per tick.
func NewStepClock(step float64) *StepClock {
	return &StepClock{Step: step}
}

// Tick advances the clock by Step.
func (c *StepClock) Tick() {
	c.elapsed += c.Step
	c.ticks++
}

func (c *StepClock) Elapsed() float64 { return c.elapsed }
func (c *StepClock) Delta() float64 {
	if c.ticks == 0 {
		return 0
	}
	return c.Step
}
func (c *StepClock) Ticks() int { return c.ticks }
