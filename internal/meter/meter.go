package meter

import (
	"log/slog"
	"reflect"
	"runtime"
	"strconv"
	"sync"

	"perfmeter/internal/clock"
	"perfmeter/internal/registry"
)

const (
	// LastErrorKey is the type-level custom data key the built-in exception
	// handler writes to.
	LastErrorKey    = "last_error"
	CallerSourceKey = "caller_source"
)

// Provider hands out one Meter per registry of its hub.
type Provider struct {
	hub *registry.Hub

	mu     sync.Mutex
	meters map[*registry.Registry]*Meter
}

var Default = NewProvider(registry.Default)

func NewProvider(hub *registry.Hub) *Provider {
	return &Provider{
		hub:    hub,
		meters: make(map[*registry.Registry]*Meter),
	}
}

func (p *Provider) Hub() *registry.Hub {
	return p.hub
}

// For returns the meter of T from the default provider.
func For[T any]() *Meter {
	return ForType[T](Default)
}

func ForType[T any](p *Provider) *Meter {
	return p.Meter(reflect.TypeFor[T]())
}

func (p *Provider) Meter(t reflect.Type) *Meter {
	return p.meterFor(p.hub.GetOrCreate(t))
}

// Described returns the meter of a class registered by descriptor rather
// than by reflection.
func (p *Provider) Described(d registry.Descriptor) *Meter {
	return p.meterFor(p.hub.GetOrCreateDescribed(d))
}

func (p *Provider) Lookup(className string) (*Meter, bool) {
	reg, ok := p.hub.Lookup(className)
	if !ok {
		return nil, false
	}
	return p.meterFor(reg), true
}

// Meters returns a meter for every registry of the hub ordered by class name.
func (p *Provider) Meters() []*Meter {
	regs := p.hub.Registries()
	out := make([]*Meter, 0, len(regs))
	for _, reg := range regs {
		out = append(out, p.meterFor(reg))
	}
	return out
}

func (p *Provider) meterFor(reg *registry.Registry) *Meter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if m, ok := p.meters[reg]; ok {
		return m
	}
	m := newMeter(reg, p.hub.Clock(), p.hub.Logger())
	p.meters[reg] = m
	return m
}

// Meter holds the policy of one tracked type: its default exception handler
// and its view of the type's registry.
type Meter struct {
	reg    *registry.Registry
	clock  clock.Clock
	logger *slog.Logger

	mu      sync.RWMutex
	handler ExceptionHandler
}

func newMeter(reg *registry.Registry, c clock.Clock, logger *slog.Logger) *Meter {
	m := &Meter{
		reg:    reg,
		clock:  c,
		logger: logger.With(slog.String("class", reg.ClassName())),
	}
	m.handler = m.recordError
	return m
}

func (m *Meter) Registry() *registry.Registry {
	return m.reg
}

func (m *Meter) ClassName() string {
	return m.reg.ClassName()
}

// Start begins watching method. The returned session must be stopped,
// usually with defer. If the start fails and a handler consumes the error, a
// session that records nothing is returned instead.
func (m *Meter) Start(method string, opts ...Option) (*Session, error) {
	return m.start(method, newStartOptions(opts), 2)
}

// Watch runs fn inside a session for method and stops it afterwards. An error
// returned by fn is returned unless the session has its own exception handler.
func (m *Meter) Watch(method string, fn func(*Session) error, opts ...Option) (err error) {
	s, err := m.start(method, newStartOptions(opts), 2)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := s.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()
	return s.Execute(func() error { return fn(s) })
}

func (m *Meter) start(method string, o startOptions, skip int) (*Session, error) {
	if method == "" {
		if err := m.handle(o.handler, ErrEmptyMethodName); err != nil {
			return nil, err
		}
		return detachedSession(m), nil
	}

	id, known := m.reg.Method(method)
	spec, _ := m.reg.Spec(method)

	caller := o.caller
	if caller == "" {
		caller = spec.Caller
	}

	data := make(map[string]any, len(spec.CustomData)+len(o.customData)+1)
	for k, v := range spec.CustomData {
		data[k] = v
	}
	for k, v := range o.customData {
		data[k] = v
	}
	if o.callerSource {
		if src, ok := callerSource(skip + 1); ok {
			data[CallerSourceKey] = src
		}
	}

	if !known {
		m.logger.Debug("watching method without counters", slog.String("method", method))
	}

	return newSession(m, id, caller, data, o), nil
}

// SetDefaultExceptionHandler replaces the type-wide fallback. It applies to
// every session without its own handler, including those already running.
func (m *Meter) SetDefaultExceptionHandler(h ExceptionHandler) error {
	if h == nil {
		return ErrNilHandler
	}
	m.mu.Lock()
	m.handler = h
	m.mu.Unlock()
	return nil
}

// RemoveDefaultExceptionHandler opts out of the fallback, so unhandled errors
// propagate to callers.
func (m *Meter) RemoveDefaultExceptionHandler() {
	m.mu.Lock()
	m.handler = nil
	m.mu.Unlock()
}

func (m *Meter) DefaultExceptionHandler() ExceptionHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.handler
}

func (m *Meter) SetRetentionMinutes(minutes int) error {
	return m.reg.SetRetentionMinutes(minutes)
}

func (m *Meter) RetentionMinutes() int {
	return m.reg.RetentionMinutes()
}

func (m *Meter) AddCustomData(key string, value any) {
	m.reg.AddCustomData(key, value)
}

func (m *Meter) CustomData(key string) (any, bool) {
	return m.reg.CustomData(key)
}

func (m *Meter) RemoveCustomData(key string) {
	m.reg.RemoveCustomData(key)
}

func (m *Meter) ClearCustomData() {
	m.reg.ClearCustomData()
}

func (m *Meter) Snapshot() registry.Snapshot {
	return m.reg.Snapshot()
}

// Reset restores the built-in exception handler and resets the registry.
func (m *Meter) Reset() {
	m.mu.Lock()
	m.handler = m.recordError
	m.mu.Unlock()
	m.reg.Reset()
}

func (m *Meter) recordError(err error) {
	m.logger.Warn("unhandled error in watched code", slog.String("error", err.Error()))
	m.reg.AddCustomData(LastErrorKey, err.Error())
}

// handle routes err to override, falling back to the meter default. It
// returns err when nobody consumed it.
func (m *Meter) handle(override ExceptionHandler, err error) error {
	h := override
	if h == nil {
		h = m.DefaultExceptionHandler()
	}
	if h == nil {
		return err
	}
	h(err)
	return nil
}

func callerSource(skip int) (string, bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", false
	}
	src := file + ":" + strconv.Itoa(line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		src += " " + fn.Name()
	}
	return src, true
}
