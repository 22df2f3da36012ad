package meter

import (
	"runtime/debug"
)

// Execute runs fn as part of the session. Errors and panics from fn are
// returned or re-raised unless the caller opted into handling, either per call
// (WithHandler, OnError, HandleErrors) or for the session
// (WithExceptionHandler). Opted-in failures go to the first handler that
// accepts them: the execute option handler, the session handler, then the
// meter default.
func (s *Session) Execute(fn func() error, opts ...ExecuteOption) error {
	o := newExecuteOptions(opts)
	if o.withoutWatching {
		s.watch.Pause()
		defer s.watch.Resume()
	}

	recovered, err := guard(fn)
	if err == nil {
		return nil
	}
	if o.handle != nil && o.handle(err) {
		return nil
	}
	if o.useHandlers || s.handler != nil {
		if err = s.meter.handle(s.handler, err); err == nil {
			return nil
		}
	}
	if recovered != nil {
		panic(recovered.Value)
	}
	return err
}

// ExecuteValue is Execute for functions with a result. fallback is returned
// when fn fails, whether or not the failure was handled.
func ExecuteValue[T any](s *Session, fn func() (T, error), fallback T, opts ...ExecuteOption) (T, error) {
	var (
		result T
		ok     bool
	)
	err := s.Execute(func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		result, ok = v, true
		return nil
	}, opts...)
	if !ok {
		return fallback, err
	}
	return result, nil
}

func guard(fn func() error) (recovered *PanicError, err error) {
	defer func() {
		if r := recover(); r != nil {
			recovered = &PanicError{Value: r, Stack: debug.Stack()}
			err = recovered
		}
	}()
	return nil, fn()
}
