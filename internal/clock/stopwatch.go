package clock

import (
	"sync"
	"time"
)

// Stopwatch accumulates running time between Start and Stop. Pause and Resume
// nest: the watch only runs again once every Pause has been matched.
// Stop is terminal.
type Stopwatch struct {
	clock Clock

	mu      sync.Mutex
	elapsed time.Duration
	since   time.Time
	started bool
	stopped bool
	pauses  int
}

func NewStopwatch(c Clock) *Stopwatch {
	if c == nil {
		c = Real()
	}
	return &Stopwatch{clock: c}
}

// StartNew returns a running stopwatch and the instant it started.
func StartNew(c Clock) (*Stopwatch, time.Time) {
	sw := NewStopwatch(c)
	return sw, sw.Start()
}

func (s *Stopwatch) Start() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.started {
		return now
	}
	s.started = true
	s.since = now
	return now
}

func (s *Stopwatch) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return
	}
	if s.pauses == 0 {
		s.elapsed += s.clock.Now().Sub(s.since)
	}
	s.pauses++
}

func (s *Stopwatch) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped || s.pauses == 0 {
		return
	}
	s.pauses--
	if s.pauses == 0 {
		s.since = s.clock.Now()
	}
}

// Stop freezes the elapsed time. It reports false if the watch was already
// stopped or never started.
func (s *Stopwatch) Stop() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.stopped {
		return s.elapsed, false
	}
	if s.pauses == 0 {
		s.elapsed += s.clock.Now().Sub(s.since)
	}
	s.stopped = true
	s.pauses = 0
	return s.elapsed, true
}

func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running() {
		return s.elapsed + s.clock.Now().Sub(s.since)
	}
	return s.elapsed
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running()
}

func (s *Stopwatch) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func (s *Stopwatch) running() bool {
	return s.started && !s.stopped && s.pauses == 0
}
