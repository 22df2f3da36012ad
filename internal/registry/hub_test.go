package registry_test

import (
	"log/slog"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/clock"
	"perfmeter/internal/registry"
)

type widget struct{}

func (*widget) Build() error       { return nil }
func (*widget) Paint(string) error { return nil }
func (*widget) cache()             {}

type annotated struct{}

func (annotated) Fetch() {}
func (annotated) Probe() {}

func (annotated) DescribeMethods() []registry.MethodSpec {
	return []registry.MethodSpec{
		{Name: "Probe", Ignore: true},
		{Name: "Fetch", Caller: "scheduler", CustomData: map[string]any{"tier": "gold"}},
	}
}

type store interface {
	Get(key string) (string, error)
	Put(key, value string) error
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "perfmeter/internal/registry_test.widget", registry.ClassName(reflect.TypeFor[widget]()))
	assert.Equal(t, "perfmeter/internal/registry_test.widget", registry.ClassName(reflect.TypeFor[*widget]()))
	assert.Equal(t, "int", registry.ClassName(reflect.TypeFor[int]()))
}

func TestDescribe_ExportedPointerMethodSet(t *testing.T) {
	d := registry.Describe(reflect.TypeFor[widget]())

	names := make([]string, 0, len(d.Methods))
	for _, m := range d.Methods {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Build", "Paint"}, names)
}

func TestDescribe_MergesDescriberMetadata(t *testing.T) {
	d := registry.Describe(reflect.TypeFor[annotated]())

	require.Len(t, d.Methods, 2)
	assert.Equal(t, "Fetch", d.Methods[0].Name)
	assert.Equal(t, "scheduler", d.Methods[0].Caller)
	assert.Equal(t, "gold", d.Methods[0].CustomData["tier"])
	assert.Equal(t, "Probe", d.Methods[1].Name)
	assert.True(t, d.Methods[1].Ignore)
}

func TestDescribe_Interface(t *testing.T) {
	d := registry.Describe(reflect.TypeFor[store]())

	require.Len(t, d.Methods, 2)
	assert.Equal(t, "Get", d.Methods[0].Name)
	assert.Equal(t, "Put", d.Methods[1].Name)
}

func newTestHub() (*registry.Hub, *clock.Manual) {
	c := clock.NewManual(epoch)
	return registry.NewHub(registry.WithClock(c), registry.WithLogger(slog.New(slog.DiscardHandler))), c
}

func TestHub_GetOrCreateIsIdempotent(t *testing.T) {
	h, _ := newTestHub()

	a := h.GetOrCreate(reflect.TypeFor[widget]())
	b := h.GetOrCreate(reflect.TypeFor[*widget]())
	assert.Same(t, a, b)

	snap := a.Snapshot()
	assert.Equal(t, []string{"Build", "Paint"}, snap.MethodNames)
}

func TestHub_GetOrCreateConcurrent(t *testing.T) {
	h, _ := newTestHub()

	const n = 32
	got := make([]*registry.Registry, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = h.GetOrCreate(reflect.TypeFor[widget]())
		}()
	}
	wg.Wait()

	for _, r := range got {
		assert.Same(t, got[0], r)
	}
	assert.Len(t, h.ClassNames(), 1)
}

func TestHub_GetOrCreateDescribed(t *testing.T) {
	h, _ := newTestHub()

	d := registry.Descriptor{ClassName: "routes", Methods: []registry.MethodSpec{{Name: "GET /a"}}}
	a := h.GetOrCreateDescribed(d)
	b := h.GetOrCreateDescribed(registry.Descriptor{ClassName: "routes"})
	assert.Same(t, a, b)

	_, ok := a.Method("GET /a")
	assert.True(t, ok)
}

func TestHub_LookupAndListing(t *testing.T) {
	h, _ := newTestHub()

	h.GetOrCreateDescribed(registry.Descriptor{ClassName: "b"})
	h.GetOrCreateDescribed(registry.Descriptor{ClassName: "a"})

	assert.Equal(t, []string{"a", "b"}, h.ClassNames())

	regs := h.Registries()
	require.Len(t, regs, 2)
	assert.Equal(t, "a", regs[0].ClassName())

	_, ok := h.Lookup("missing")
	assert.False(t, ok)
	r, ok := h.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "b", r.ClassName())
}

func TestHub_RegistriesInheritOptions(t *testing.T) {
	c := clock.NewManual(epoch)
	h := registry.NewHub(
		registry.WithClock(c),
		registry.WithLogger(slog.New(slog.DiscardHandler)),
		registry.WithDefaultRetention(15),
	)

	r := h.GetOrCreateDescribed(registry.Descriptor{ClassName: "x"})
	assert.Equal(t, 15, r.RetentionMinutes())
	assert.Equal(t, epoch, r.Snapshot().UptimeSince)
	assert.Same(t, c, h.Clock())
}

func TestHub_OnComplete(t *testing.T) {
	h, c := newTestHub()
	r := h.GetOrCreateDescribed(registry.Descriptor{
		ClassName: "svc",
		Methods:   []registry.MethodSpec{{Name: "Run"}, {Name: "Skip", Ignore: true}},
	})

	var mu sync.Mutex
	var seen []registry.CompletedCall
	h.OnComplete(func(call registry.CompletedCall) {
		mu.Lock()
		seen = append(seen, call)
		mu.Unlock()
	})

	run, _ := r.Method("Run")
	skip, _ := r.Method("Skip")
	r.Begin(run)
	r.End(registry.Completion{Method: run, StartTime: c.Now(), Elapsed: time.Millisecond})
	r.End(registry.Completion{Method: skip, StartTime: c.Now()})

	require.Len(t, seen, 1)
	assert.Equal(t, "Run", seen[0].Method.Name)
	assert.Equal(t, uint64(1), seen[0].Seq)
}

func TestHub_ObserverMayReadRegistry(t *testing.T) {
	h, c := newTestHub()
	r := h.GetOrCreateDescribed(registry.Descriptor{
		ClassName: "svc",
		Methods:   []registry.MethodSpec{{Name: "Run"}},
	})

	var total int64
	h.OnComplete(func(registry.CompletedCall) {
		snap := r.Snapshot()
		total = snap.Total("Run")
	})

	run, _ := r.Method("Run")
	r.End(registry.Completion{Method: run, StartTime: c.Now()})
	assert.Equal(t, int64(1), total)
}
