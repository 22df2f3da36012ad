package meter

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"perfmeter/internal/clock"
	"perfmeter/internal/registry"
)

type State int

const (
	StateCreated State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is one in-flight measurement of a method call.
//
// Once stopped, a session ignores further custom data and steps: AddCustomData,
// Step, StepIf and Ignore silently do nothing. Reads keep working.
type Session struct {
	meter    *Meter
	method   registry.MethodID
	caller   string
	handler  ExceptionHandler
	commands []Command
	watch    *clock.Stopwatch
	start    time.Time

	mu         sync.Mutex
	state      State
	customData map[string]any
	steps      []registry.Step
}

func newSession(m *Meter, id registry.MethodID, caller string, data map[string]any, o startOptions) *Session {
	s := &Session{
		meter:      m,
		method:     id,
		caller:     caller,
		handler:    o.handler,
		commands:   o.commands,
		watch:      clock.NewStopwatch(m.clock),
		state:      StateCreated,
		customData: data,
	}

	m.reg.Begin(id)
	s.start = s.watch.Start()
	s.state = StateRunning
	return s
}

// detachedSession stands in for a session whose start failed and was handled.
func detachedSession(m *Meter) *Session {
	return &Session{
		meter: m,
		watch: clock.NewStopwatch(m.clock),
		state: StateStopped,
	}
}

func (s *Session) Method() registry.MethodID {
	return s.method
}

func (s *Session) Caller() string {
	return s.caller
}

func (s *Session) StartTime() time.Time {
	return s.start
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed is the measured time so far, excluding paused intervals.
func (s *Session) Elapsed() time.Duration {
	return s.watch.Elapsed()
}

func (s *Session) AddCustomData(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return
	}
	if s.customData == nil {
		s.customData = make(map[string]any)
	}
	s.customData[key] = value
}

func (s *Session) CustomData(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.customData[key]
	return v, ok
}

// GetAndRemoveCustomData removes key while the session runs. After Stop the
// recorded data is frozen and the value is only read.
func (s *Session) GetAndRemoveCustomData(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.customData[key]
	if ok && s.state == StateRunning {
		delete(s.customData, key)
	}
	return v, ok
}

// Steps returns the steps recorded so far.
func (s *Session) Steps() []registry.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]registry.Step(nil), s.steps...)
}

func (s *Session) Step(name string) *Step {
	return s.StepIf(name, 0)
}

// StepIf starts a step that is only recorded when it runs for at least
// minSave. A non-positive minSave always records.
func (s *Session) StepIf(name string, minSave time.Duration) *Step {
	return newStep(s, name, minSave)
}

// Ignore starts an unnamed step whose time is excluded from the session and
// which is never recorded.
func (s *Session) Ignore() *Step {
	return newStep(s, "", 0).Suspend()
}

func (s *Session) addStep(st registry.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return
	}
	s.steps = append(s.steps, st)
}

// Stop records the call and runs the session commands. Only the first call
// has any effect. A failure while recording goes to the session handler, then
// the meter default, and is returned when neither is set.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return nil
	}
	s.state = StateStopped
	elapsed, _ := s.watch.Stop()
	c := registry.Completion{
		Method:       s.method,
		Elapsed:      elapsed,
		Caller:       s.caller,
		StartTime:    s.start,
		CustomData:   s.customData,
		Steps:        s.steps,
		WithSnapshot: len(s.commands) > 0,
	}
	s.mu.Unlock()

	out, err := s.record(c)
	if err != nil {
		return s.meter.handle(s.handler, err)
	}

	if out.Snapshot != nil {
		for _, cmd := range s.commands {
			cmd.Execute(*out.Snapshot)
		}
	}
	return nil
}

func (s *Session) record(c registry.Completion) (out registry.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to record call: %w", &PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	return s.meter.reg.End(c), nil
}

