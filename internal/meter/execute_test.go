package meter_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmeter/internal/meter"
)

type notFoundError struct {
	key string
}

func (e *notFoundError) Error() string {
	return "not found: " + e.key
}

func startFoo(t *testing.T, m *meter.Meter, opts ...meter.Option) *meter.Session {
	t.Helper()
	s, err := m.Start("Foo", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func TestExecute_Success(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	ran := false
	err := s.Execute(func() error {
		ran = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, ran)
}

func TestExecute_UnhandledErrorPropagates(t *testing.T) {
	m, _ := newTestMeter(t)
	m.RemoveDefaultExceptionHandler()
	s := startFoo(t, m)

	boom := errors.New("boom")
	assert.ErrorIs(t, s.Execute(func() error { return boom }), boom)
}

func TestExecute_ErrorPropagatesByDefault(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	boom := errors.New("db timeout")
	assert.ErrorIs(t, s.Execute(func() error { return boom }), boom)

	_, recorded := m.CustomData(meter.LastErrorKey)
	assert.False(t, recorded, "the built-in handler is not consulted without opting in")
}

func TestExecute_HandleErrorsRecordsLastError(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	err := s.Execute(func() error { return errors.New("db timeout") }, meter.HandleErrors())
	require.NoError(t, err)

	v, ok := m.CustomData(meter.LastErrorKey)
	require.True(t, ok)
	assert.Equal(t, "db timeout", v)
}

func TestExecute_HandleErrorsWithoutDefaultPropagates(t *testing.T) {
	m, _ := newTestMeter(t)
	m.RemoveDefaultExceptionHandler()
	s := startFoo(t, m)

	boom := errors.New("boom")
	assert.ErrorIs(t, s.Execute(func() error { return boom }, meter.HandleErrors()), boom)
}

func TestExecute_HandlerPrecedence(t *testing.T) {
	m, _ := newTestMeter(t)

	var order []string
	require.NoError(t, m.SetDefaultExceptionHandler(func(error) { order = append(order, "meter") }))
	s := startFoo(t, m, meter.WithExceptionHandler(func(error) { order = append(order, "session") }))

	fail := func() error { return errors.New("x") }
	require.NoError(t, s.Execute(fail, meter.WithHandler(func(error) { order = append(order, "call") })))
	require.NoError(t, s.Execute(fail))

	assert.Equal(t, []string{"call", "session"}, order)
}

func TestExecute_TypedHandler(t *testing.T) {
	m, _ := newTestMeter(t)
	m.RemoveDefaultExceptionHandler()
	s := startFoo(t, m)

	var missing string
	onNotFound := meter.OnError(func(err *notFoundError) { missing = err.key })

	err := s.Execute(func() error {
		return fmt.Errorf("failed to load: %w", &notFoundError{key: "sku-1"})
	}, onNotFound)
	require.NoError(t, err)
	assert.Equal(t, "sku-1", missing)

	other := errors.New("other")
	assert.ErrorIs(t, s.Execute(func() error { return other }, onNotFound), other)
}

func TestExecute_TypedHandlerFallsBackToMeter(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	err := s.Execute(func() error { return errors.New("unrelated") },
		meter.OnError(func(*notFoundError) { t.Fatal("typed handler must not match") }))
	require.NoError(t, err)

	v, _ := m.CustomData(meter.LastErrorKey)
	assert.Equal(t, "unrelated", v)
}

func TestExecute_PanicHandled(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	var got error
	err := s.Execute(func() error { panic("bad index") }, meter.WithHandler(func(err error) { got = err }))
	require.NoError(t, err)

	var pe *meter.PanicError
	require.ErrorAs(t, got, &pe)
	assert.Equal(t, "bad index", pe.Value)
	assert.NotEmpty(t, pe.Stack)
}

func TestExecute_PanicWithErrorUnwraps(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	sentinel := errors.New("sentinel")
	var got error
	require.NoError(t, s.Execute(func() error { panic(sentinel) }, meter.WithHandler(func(err error) { got = err })))
	assert.ErrorIs(t, got, sentinel)
}

func TestExecute_UnhandledPanicReraised(t *testing.T) {
	m, _ := newTestMeter(t)
	m.RemoveDefaultExceptionHandler()
	s := startFoo(t, m)

	assert.PanicsWithValue(t, "fatal", func() {
		_ = s.Execute(func() error { panic("fatal") }, meter.HandleErrors())
	})
}

func TestExecute_PanicReraisedByDefault(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	assert.PanicsWithValue(t, "fatal", func() {
		_ = s.Execute(func() error { panic("fatal") })
	})

	_, recorded := m.CustomData(meter.LastErrorKey)
	assert.False(t, recorded)
}

func TestExecute_WithoutWatching(t *testing.T) {
	m, c := newTestMeter(t)
	s, err := m.Start("Foo")
	require.NoError(t, err)

	c.Advance(10 * time.Millisecond)
	require.NoError(t, s.Execute(func() error {
		c.Advance(time.Second)
		return nil
	}, meter.WithoutWatching()))
	c.Advance(10 * time.Millisecond)
	require.NoError(t, s.Stop())

	assert.Equal(t, 20*time.Millisecond, m.Snapshot().MethodCalls[0].Elapsed)
}

func TestExecute_WithoutWatchingResumesOnError(t *testing.T) {
	m, c := newTestMeter(t)
	s, err := m.Start("Foo")
	require.NoError(t, err)

	_ = s.Execute(func() error {
		c.Advance(time.Second)
		return errors.New("fail")
	}, meter.WithoutWatching())
	c.Advance(time.Millisecond)

	assert.Equal(t, time.Millisecond, s.Elapsed())
	require.NoError(t, s.Stop())
}

func TestExecuteValue(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	v, err := meter.ExecuteValue(s, func() (int, error) { return 42, nil }, -1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	boom := errors.New("boom")
	v, err = meter.ExecuteValue(s, func() (int, error) { return 7, boom }, -1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, -1, v)

	v, err = meter.ExecuteValue(s, func() (int, error) { return 7, errors.New("nope") }, -1, meter.HandleErrors())
	require.NoError(t, err, "handled by the built-in handler")
	assert.Equal(t, -1, v)
}

func TestExecuteValue_Panic(t *testing.T) {
	m, _ := newTestMeter(t)
	s := startFoo(t, m)

	v, err := meter.ExecuteValue(s, func() (string, error) { panic("no value") }, "fallback", meter.HandleErrors())
	require.NoError(t, err)
	assert.Equal(t, "fallback", v)
}
