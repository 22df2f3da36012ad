package registry

import (
	"errors"
	"time"
)

const (
	DefaultRetentionMinutes = 5
	UnknownCaller           = "unknown"
)

var ErrInvalidRetention = errors.New("retention must be at least one minute")

// MethodID identifies a method of a tracked type. Two lookups of the same
// method always produce equal values.
type MethodID struct {
	Class string
	Name  string
}

func (m MethodID) String() string {
	return m.Class + "." + m.Name
}

// MethodSpec is the static metadata of a tracked method.
type MethodSpec struct {
	Name       string
	Ignore     bool
	Caller     string
	CustomData map[string]any
}

type CallCount struct {
	Method MethodID
	Calls  int64
}

type Step struct {
	Name       string
	Elapsed    time.Duration
	StartTime  time.Time
	EndTime    time.Time
	CustomData map[string]any
}

// CompletedCall is one finished watch. It is never modified after End
// creates it, so snapshots share its maps and slices.
type CompletedCall struct {
	Seq        uint64
	Method     MethodID
	Elapsed    time.Duration
	Caller     string
	StartTime  time.Time
	EndTime    time.Time
	CustomData map[string]any
	Steps      []Step
}

// Completion carries what a finished session reports to its registry.
type Completion struct {
	Method     MethodID
	Elapsed    time.Duration
	Caller     string
	StartTime  time.Time
	CustomData map[string]any
	Steps      []Step

	// WithSnapshot asks End for a snapshot taken in the same critical section.
	WithSnapshot bool
}

type Outcome struct {
	Call     CompletedCall
	Recorded bool
	Snapshot *Snapshot
}

type Snapshot struct {
	ClassName        string
	MethodNames      []string
	CurrentActivity  []CallCount
	TotalActivity    []CallCount
	MethodCalls      []CompletedCall
	CustomData       map[string]any
	UptimeSince      time.Time
	RetentionMinutes int
}

func (s Snapshot) Current(method string) int64 {
	return findCount(s.CurrentActivity, method)
}

func (s Snapshot) Total(method string) int64 {
	return findCount(s.TotalActivity, method)
}

// Calls returns the recorded calls of one method in completion order.
func (s Snapshot) Calls(method string) []CompletedCall {
	var out []CompletedCall
	for _, c := range s.MethodCalls {
		if c.Method.Name == method {
			out = append(out, c)
		}
	}
	return out
}

func findCount(counts []CallCount, method string) int64 {
	for _, c := range counts {
		if c.Method.Name == method {
			return c.Calls
		}
	}
	return 0
}
