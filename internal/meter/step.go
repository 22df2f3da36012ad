package meter

import (
	"sync"
	"time"

	"perfmeter/internal/clock"
	"perfmeter/internal/registry"
)

// Step measures a named block inside a session.
type Step struct {
	parent  *Session
	name    string
	minSave time.Duration
	watch   *clock.Stopwatch
	start   time.Time

	mu         sync.Mutex
	stopped    bool
	suspended  bool
	customData map[string]any
}

func newStep(parent *Session, name string, minSave time.Duration) *Step {
	st := &Step{
		parent:  parent,
		name:    name,
		minSave: minSave,
		watch:   clock.NewStopwatch(parent.meter.clock),
	}
	if parent.State() != StateRunning {
		st.stopped = true
		return st
	}
	st.start = st.watch.Start()
	return st
}

func (st *Step) Name() string {
	return st.name
}

func (st *Step) Elapsed() time.Duration {
	return st.watch.Elapsed()
}

// Suspend pauses the parent session until the step stops. A suspended step is
// never recorded.
func (st *Step) Suspend() *Step {
	st.mu.Lock()
	if st.stopped || st.suspended {
		st.mu.Unlock()
		return st
	}
	st.suspended = true
	st.mu.Unlock()

	st.parent.watch.Pause()
	return st
}

func (st *Step) AddCustomData(key string, value any) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.stopped {
		return
	}
	if st.customData == nil {
		st.customData = make(map[string]any)
	}
	st.customData[key] = value
}

func (st *Step) CustomData(key string) (any, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	v, ok := st.customData[key]
	return v, ok
}

func (st *Step) GetAndRemoveCustomData(key string) (any, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	v, ok := st.customData[key]
	if ok && !st.stopped {
		delete(st.customData, key)
	}
	return v, ok
}

// Stop ends the step and hands it to the parent session unless it was
// suspended or ran for less than its threshold. Only the first call counts.
func (st *Step) Stop() {
	st.mu.Lock()
	if st.stopped {
		st.mu.Unlock()
		return
	}
	st.stopped = true
	suspended := st.suspended
	data := st.customData
	st.mu.Unlock()

	elapsed, _ := st.watch.Stop()
	if suspended {
		st.parent.watch.Resume()
		return
	}
	if st.minSave > 0 && elapsed < st.minSave {
		return
	}

	st.parent.addStep(registry.Step{
		Name:       st.name,
		Elapsed:    elapsed,
		StartTime:  st.start,
		EndTime:    st.start.Add(elapsed),
		CustomData: data,
	})
}
