package registry

import (
	"log/slog"
	"maps"
	"sync"
	"time"

	"perfmeter/internal/clock"
)

// Registry is the performance ledger of one tracked type. Every field below mu
// is guarded by it; observers run after it is released.
type Registry struct {
	className        string
	specs            map[string]MethodSpec
	order            []MethodID
	methodNames      []string
	clock            clock.Clock
	logger           *slog.Logger
	defaultRetention int
	observers        func() []Observer

	mu         sync.Mutex
	current    map[MethodID]int64
	total      map[MethodID]int64
	calls      []CompletedCall
	customData map[string]any
	retention  int
	oldest     time.Time
	lastPrune  time.Time
	uptime     time.Time
	seq        uint64
}

type Observer func(CompletedCall)

type options struct {
	clock            clock.Clock
	logger           *slog.Logger
	defaultRetention int
	observers        func() []Observer
}

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDefaultRetention sets the retention restored by Reset. Values below one
// minute fall back to DefaultRetentionMinutes.
func WithDefaultRetention(minutes int) Option {
	return func(o *options) { o.defaultRetention = minutes }
}

func newOptions(opts []Option) options {
	o := options{
		clock:            clock.Real(),
		logger:           slog.Default(),
		defaultRetention: DefaultRetentionMinutes,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.defaultRetention < 1 {
		o.defaultRetention = DefaultRetentionMinutes
	}
	return o
}

func New(d Descriptor, opts ...Option) *Registry {
	o := newOptions(opts)

	r := &Registry{
		className:        d.ClassName,
		specs:            make(map[string]MethodSpec, len(d.Methods)),
		clock:            o.clock,
		logger:           o.logger.With(slog.String("class", d.ClassName)),
		defaultRetention: o.defaultRetention,
		observers:        o.observers,
	}

	for _, spec := range d.Methods {
		if _, dup := r.specs[spec.Name]; dup {
			continue
		}
		r.specs[spec.Name] = spec
		if spec.Ignore {
			continue
		}
		r.order = append(r.order, MethodID{Class: d.ClassName, Name: spec.Name})
		r.methodNames = append(r.methodNames, spec.Name)
	}

	r.reset()
	return r
}

func (r *Registry) ClassName() string {
	return r.className
}

// Method resolves a method name to its identity. The identity is returned even
// for unknown names so callers can still start a (counter-less) watch.
func (r *Registry) Method(name string) (MethodID, bool) {
	_, ok := r.specs[name]
	return MethodID{Class: r.className, Name: name}, ok
}

func (r *Registry) Spec(name string) (MethodSpec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

func (r *Registry) Begin(m MethodID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.current[m]; ok {
		r.current[m]++
	}
}

func (r *Registry) End(c Completion) Outcome {
	now := r.clock.Now()

	r.mu.Lock()
	out := r.end(c, now)
	if c.WithSnapshot {
		snap := r.snapshot()
		out.Snapshot = &snap
	}
	r.mu.Unlock()

	if out.Recorded && r.observers != nil {
		for _, observe := range r.observers() {
			observe(out.Call)
		}
	}
	return out
}

func (r *Registry) end(c Completion, now time.Time) Outcome {
	var out Outcome

	// Ignored and unknown methods have no current entry and are not recorded.
	if n, ok := r.current[c.Method]; ok {
		if n > 0 {
			r.current[c.Method] = n - 1
		} else {
			r.logger.Warn("current activity already zero, ignoring decrement",
				slog.String("method", c.Method.Name))
		}
		r.total[c.Method]++

		r.seq++
		caller := c.Caller
		if caller == "" {
			caller = UnknownCaller
		}
		out.Call = CompletedCall{
			Seq:        r.seq,
			Method:     c.Method,
			Elapsed:    c.Elapsed,
			Caller:     caller,
			StartTime:  c.StartTime,
			EndTime:    c.StartTime.Add(c.Elapsed),
			CustomData: c.CustomData,
			Steps:      c.Steps,
		}
		if len(r.calls) == 0 || c.StartTime.Before(r.oldest) {
			r.oldest = c.StartTime
		}
		r.calls = append(r.calls, out.Call)
		out.Recorded = true
	}

	r.prune(now)
	return out
}

// prune drops calls that started before now-retention. A pass runs once per
// retention period, or sooner when the oldest retained call has expired.
func (r *Registry) prune(now time.Time) {
	window := time.Duration(r.retention) * time.Minute
	cutoff := now.Add(-window)

	expired := len(r.calls) > 0 && r.oldest.Before(cutoff)
	if !expired && now.Sub(r.lastPrune) < window {
		return
	}

	kept := r.calls[:0]
	var oldest time.Time
	for _, c := range r.calls {
		if c.StartTime.Before(cutoff) {
			continue
		}
		if len(kept) == 0 || c.StartTime.Before(oldest) {
			oldest = c.StartTime
		}
		kept = append(kept, c)
	}
	clear(r.calls[len(kept):])
	if removed := len(r.calls) - len(kept); removed > 0 {
		r.logger.Debug("pruned method calls",
			slog.Int("removed", removed),
			slog.Int("retention_minutes", r.retention))
	}
	r.calls = kept
	r.oldest = oldest
	r.lastPrune = now
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

func (r *Registry) snapshot() Snapshot {
	current, total := r.activity()
	return Snapshot{
		ClassName:        r.className,
		MethodNames:      append([]string(nil), r.methodNames...),
		CurrentActivity:  current,
		TotalActivity:    total,
		MethodCalls:      append([]CompletedCall(nil), r.calls...),
		CustomData:       maps.Clone(r.customData),
		UptimeSince:      r.uptime,
		RetentionMinutes: r.retention,
	}
}

// Activity returns only the counters, without copying the call window.
func (r *Registry) Activity() (current, total []CallCount) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activity()
}

func (r *Registry) activity() (current, total []CallCount) {
	current = make([]CallCount, len(r.order))
	total = make([]CallCount, len(r.order))
	for i, m := range r.order {
		current[i] = CallCount{Method: m, Calls: r.current[m]}
		total[i] = CallCount{Method: m, Calls: r.total[m]}
	}
	return current, total
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *Registry) SetRetentionMinutes(minutes int) error {
	if minutes < 1 {
		return ErrInvalidRetention
	}
	r.mu.Lock()
	r.retention = minutes
	r.mu.Unlock()
	return nil
}

func (r *Registry) RetentionMinutes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retention
}

func (r *Registry) AddCustomData(key string, value any) {
	r.mu.Lock()
	r.customData[key] = value
	r.mu.Unlock()
}

func (r *Registry) CustomData(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.customData[key]
	return v, ok
}

func (r *Registry) RemoveCustomData(key string) {
	r.mu.Lock()
	delete(r.customData, key)
	r.mu.Unlock()
}

func (r *Registry) ClearCustomData() {
	r.mu.Lock()
	clear(r.customData)
	r.mu.Unlock()
}

// Reset drops every counter, call and custom data entry and restores the
// default retention.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.reset()
	r.mu.Unlock()
}

func (r *Registry) reset() {
	now := r.clock.Now()
	r.current = make(map[MethodID]int64, len(r.order))
	r.total = make(map[MethodID]int64, len(r.order))
	for _, m := range r.order {
		r.current[m] = 0
		r.total[m] = 0
	}
	r.calls = nil
	r.oldest = time.Time{}
	r.customData = make(map[string]any)
	r.retention = r.defaultRetention
	r.lastPrune = now
	r.uptime = now
}
