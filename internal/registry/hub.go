package registry

import (
	"cmp"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"perfmeter/internal/clock"
)

// Hub owns one Registry per tracked type.
type Hub struct {
	opts options

	mu         sync.Mutex
	registries map[string]*Registry
	observers  atomic.Pointer[[]Observer]
}

var Default = NewHub()

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		opts:       newOptions(opts),
		registries: make(map[string]*Registry),
	}
	h.opts.observers = h.loadObservers
	return h
}

func (h *Hub) Clock() clock.Clock {
	return h.opts.clock
}

func (h *Hub) Logger() *slog.Logger {
	return h.opts.logger
}

// GetOrCreate returns the registry of t, discovering its methods on first use.
func (h *Hub) GetOrCreate(t reflect.Type) *Registry {
	name := ClassName(t)

	h.mu.Lock()
	defer h.mu.Unlock()

	if r, ok := h.registries[name]; ok {
		return r
	}
	r := h.newRegistry(Describe(t))
	h.registries[name] = r
	return r
}

// GetOrCreateDescribed is GetOrCreate for types described explicitly. The
// descriptor is ignored if the class already has a registry.
func (h *Hub) GetOrCreateDescribed(d Descriptor) *Registry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if r, ok := h.registries[d.ClassName]; ok {
		return r
	}
	r := h.newRegistry(d)
	h.registries[d.ClassName] = r
	return r
}

func (h *Hub) newRegistry(d Descriptor) *Registry {
	h.opts.logger.Debug("creating registry",
		slog.String("class", d.ClassName),
		slog.Int("methods", len(d.Methods)))

	return New(d,
		WithClock(h.opts.clock),
		WithLogger(h.opts.logger),
		WithDefaultRetention(h.opts.defaultRetention),
		withObservers(h.opts.observers),
	)
}

func (h *Hub) Lookup(className string) (*Registry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.registries[className]
	return r, ok
}

func (h *Hub) ClassNames() []string {
	h.mu.Lock()
	names := make([]string, 0, len(h.registries))
	for name := range h.registries {
		names = append(names, name)
	}
	h.mu.Unlock()

	slices.Sort(names)
	return names
}

// Registries returns every registry ordered by class name.
func (h *Hub) Registries() []*Registry {
	h.mu.Lock()
	out := make([]*Registry, 0, len(h.registries))
	for _, r := range h.registries {
		out = append(out, r)
	}
	h.mu.Unlock()

	slices.SortFunc(out, func(a, b *Registry) int {
		return cmp.Compare(a.className, b.className)
	})
	return out
}

// OnComplete registers fn to receive every recorded call of every registry
// owned by h. Observers run synchronously after the registry lock is released.
func (h *Hub) OnComplete(fn Observer) {
	for {
		old := h.observers.Load()
		var next []Observer
		if old != nil {
			next = slices.Clone(*old)
		}
		next = append(next, fn)
		if h.observers.CompareAndSwap(old, &next) {
			return
		}
	}
}

func (h *Hub) loadObservers() []Observer {
	if p := h.observers.Load(); p != nil {
		return *p
	}
	return nil
}

func withObservers(fn func() []Observer) Option {
	return func(o *options) { o.observers = fn }
}
