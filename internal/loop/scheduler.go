package loop

import (
	"slices"
	"sync"
	"time"
)

// Clock provides the current time to the scheduler.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns time.Now().
func (RealClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a manual clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type tickHandler struct {
	name string
	fn   func()
}

// Timer is a one-shot callback created by Scheduler.After.
type Timer struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports whether the call prevented the callback.
func (t *Timer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Scheduler dispatches frames at a fixed cadence. A frame runs every
// registered handler once, in registration order. The scheduler is driven
// by calling Step from a single goroutine; handlers and timer callbacks run
// on that goroutine.
//
// Pausing stops dispatch immediately, even between two handlers of the same
// frame. Resuming re-arms the next deadline one interval after the resume, so
// time spent paused is neither replayed nor lost.
type Scheduler struct {
	clock      Clock
	interval   time.Duration
	maxCatchUp int

	handlers []tickHandler
	timers   []*Timer

	next   time.Time // Deadline of the next frame
	paused bool
	frames uint64
}

// NewScheduler creates a scheduler whose first frame is due one interval
// from now. At most maxCatchUp frames run per Step when behind; older
// backlog is dropped.
func NewScheduler(clock Clock, interval time.Duration, maxCatchUp int) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Scheduler{
		clock:      clock,
		interval:   interval,
		maxCatchUp: maxCatchUp,
		next:       clock.Now().Add(interval),
	}
}

// Register appends a handler to every frame.
func (s *Scheduler) Register(name string, fn func()) {
	s.handlers = append(s.handlers, tickHandler{name: name, fn: fn})
}

// Handlers returns the registered handler names in dispatch order.
func (s *Scheduler) Handlers() []string {
	names := make([]string, len(s.handlers))
	for i, h := range s.handlers {
		names[i] = h.name
	}
	return names
}

// Pause stops frame dispatch until Resume.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume restarts frame dispatch. The next frame is due one interval later.
func (s *Scheduler) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.next = s.clock.Now().Add(s.interval)
}

// Paused reports whether dispatch is stopped.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Frames returns the number of frames started so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// After schedules fn to run once, d from now. Timers run in real time and
// fire even while frame dispatch is paused.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	t := &Timer{at: s.clock.Now().Add(d), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// NextDeadline returns the earliest time at which Step has work to do.
func (s *Scheduler) NextDeadline() time.Time {
	var deadline time.Time
	if !s.paused {
		deadline = s.next
	}
	for _, t := range s.timers {
		if t.stopped || t.fired {
			continue
		}
		if deadline.IsZero() || t.at.Before(deadline) {
			deadline = t.at
		}
	}
	return deadline
}

// Step fires due timers, then runs every due frame. It returns the number of
// frames started.
func (s *Scheduler) Step() int {
	now := s.clock.Now()
	s.fireTimers(now)

	ran := 0
	for !s.paused && !now.Before(s.next) && ran < s.maxCatchUp {
		s.frames++
		ran++
		if !s.runFrame() {
			// Paused mid-frame; Resume re-arms the deadline.
			return ran
		}
		s.next = s.next.Add(s.interval)
	}

	if !s.paused && !now.Before(s.next) {
		s.next = now.Add(s.interval)
	}
	return ran
}

// runFrame dispatches handlers in order. It reports false if a handler
// paused the scheduler.
func (s *Scheduler) runFrame() bool {
	for _, h := range s.handlers {
		if s.paused {
			return false
		}
		h.fn()
	}
	return !s.paused
}

func (s *Scheduler) fireTimers(now time.Time) {
	pending := s.timers[:0]
	var due []*Timer
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case now.Before(t.at):
			pending = append(pending, t)
		default:
			due = append(due, t)
		}
	}
	clear(s.timers[len(pending):])
	s.timers = pending

	slices.SortStableFunc(due, func(a, b *Timer) int { return a.at.Compare(b.at) })
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.fired = true
		t.fn()
	}
}
