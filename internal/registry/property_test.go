package registry_test

import (
	"log/slog"
	"testing"
	"time"

	"pgregory.net/rapid"

	"perfmeter/internal/clock"
	"perfmeter/internal/registry"
)

var propertyMethods = []string{"Alpha", "Beta", "Gamma"}

func newPropertyRegistry(retention int) (*registry.Registry, *clock.Manual) {
	c := clock.NewManual(epoch)
	specs := make([]registry.MethodSpec, 0, len(propertyMethods))
	for _, name := range propertyMethods {
		specs = append(specs, registry.MethodSpec{Name: name})
	}
	r := registry.New(registry.Descriptor{ClassName: "prop.Type", Methods: specs},
		registry.WithClock(c), registry.WithLogger(slog.New(slog.DiscardHandler)))
	if err := r.SetRetentionMinutes(retention); err != nil {
		panic(err)
	}
	return r, c
}

// Balanced Begin/End pairs leave current activity at zero and total activity
// equal to the number of pairs, whatever the interleaving.
func TestProperty_CounterSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, c := newPropertyRegistry(registry.DefaultRetentionMinutes)

		type open struct {
			method registry.MethodID
			start  time.Time
		}
		var inFlight []open
		want := make(map[string]int64)

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for range steps {
			if len(inFlight) > 0 && rapid.Bool().Draw(t, "end") {
				i := rapid.IntRange(0, len(inFlight)-1).Draw(t, "which")
				o := inFlight[i]
				inFlight = append(inFlight[:i], inFlight[i+1:]...)
				r.End(registry.Completion{Method: o.method, StartTime: o.start, Elapsed: c.Now().Sub(o.start)})
				want[o.method.Name]++
				continue
			}
			name := rapid.SampledFrom(propertyMethods).Draw(t, "method")
			m, _ := r.Method(name)
			r.Begin(m)
			inFlight = append(inFlight, open{method: m, start: c.Now()})
			c.Advance(time.Duration(rapid.IntRange(0, 500).Draw(t, "ms")) * time.Millisecond)
		}

		snap := r.Snapshot()
		inFlightBy := make(map[string]int64)
		for _, o := range inFlight {
			inFlightBy[o.method.Name]++
		}
		for _, name := range propertyMethods {
			if got := snap.Current(name); got != inFlightBy[name] {
				t.Fatalf("current[%s] = %d, want %d", name, got, inFlightBy[name])
			}
			if got := snap.Total(name); got != want[name] {
				t.Fatalf("total[%s] = %d, want %d", name, got, want[name])
			}
		}
	})
}

// After any End, no retained call started before now minus the retention.
func TestProperty_RetentionWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		retention := rapid.IntRange(1, 3).Draw(t, "retention")
		r, c := newPropertyRegistry(retention)
		window := time.Duration(retention) * time.Minute

		calls := rapid.IntRange(1, 100).Draw(t, "calls")
		for range calls {
			name := rapid.SampledFrom(propertyMethods).Draw(t, "method")
			m, _ := r.Method(name)
			back := time.Duration(rapid.IntRange(0, 240).Draw(t, "startedSecondsAgo")) * time.Second
			start := c.Now().Add(-back)

			r.Begin(m)
			r.End(registry.Completion{Method: m, StartTime: start, Elapsed: back})

			cutoff := c.Now().Add(-window)
			for _, call := range r.Snapshot().MethodCalls {
				if call.StartTime.Before(cutoff) {
					t.Fatalf("call %d started %s before cutoff %s", call.Seq, call.StartTime, cutoff)
				}
			}
			c.Advance(time.Duration(rapid.IntRange(0, 90).Draw(t, "advanceSeconds")) * time.Second)
		}
	})
}
