package meter

import (
	"errors"
	"maps"

	"perfmeter/internal/registry"
)

// ExceptionHandler consumes an error raised by watched code. Registering one
// means the error is handled and execution continues.
type ExceptionHandler func(error)

// Command runs after a session is recorded and receives the registry state
// as of that call.
type Command interface {
	Name() string
	Execute(snap registry.Snapshot)
}

// CommandFunc adapts a plain function to Command.
type CommandFunc func(registry.Snapshot)

func (f CommandFunc) Name() string { return "func" }

func (f CommandFunc) Execute(snap registry.Snapshot) { f(snap) }

type startOptions struct {
	caller       string
	customData   map[string]any
	handler      ExceptionHandler
	commands     []Command
	callerSource bool
}

type Option func(*startOptions)

// WithCaller overrides the caller recorded for the session.
func WithCaller(caller string) Option {
	return func(o *startOptions) { o.caller = caller }
}

func WithCustomData(key string, value any) Option {
	return func(o *startOptions) {
		if o.customData == nil {
			o.customData = make(map[string]any)
		}
		o.customData[key] = value
	}
}

func WithCustomDataMap(data map[string]any) Option {
	return func(o *startOptions) {
		if o.customData == nil {
			o.customData = make(map[string]any, len(data))
		}
		maps.Copy(o.customData, data)
	}
}

// WithExceptionHandler sets a handler for this session only. It takes
// precedence over the meter default and also consumes errors from the
// session's Execute calls.
func WithExceptionHandler(h ExceptionHandler) Option {
	return func(o *startOptions) { o.handler = h }
}

func WithCommand(c Command) Option {
	return func(o *startOptions) {
		if c != nil {
			o.commands = append(o.commands, c)
		}
	}
}

func WithAction(fn func(registry.Snapshot)) Option {
	return func(o *startOptions) {
		if fn != nil {
			o.commands = append(o.commands, CommandFunc(fn))
		}
	}
}

// WithCallerSource records the file, line and function that started the
// session under CallerSourceKey.
func WithCallerSource() Option {
	return func(o *startOptions) { o.callerSource = true }
}

func newStartOptions(opts []Option) startOptions {
	var o startOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type executeOptions struct {
	withoutWatching bool
	useHandlers     bool
	handle          func(error) bool
}

type ExecuteOption func(*executeOptions)

// WithoutWatching pauses the session timer while the callback runs.
func WithoutWatching() ExecuteOption {
	return func(o *executeOptions) { o.withoutWatching = true }
}

// HandleErrors routes failures of this execution to the session handler or
// the meter default instead of returning them.
func HandleErrors() ExecuteOption {
	return func(o *executeOptions) { o.useHandlers = true }
}

// WithHandler handles errors of this execution before the session and meter
// handlers are consulted.
func WithHandler(h ExceptionHandler) ExecuteOption {
	return func(o *executeOptions) {
		o.useHandlers = true
		if h == nil {
			o.handle = nil
			return
		}
		o.handle = func(err error) bool {
			h(err)
			return true
		}
	}
}

// OnError handles only errors that match E via errors.As. Other errors fall
// through to the session and meter handlers.
func OnError[E error](fn func(E)) ExecuteOption {
	return func(o *executeOptions) {
		o.useHandlers = true
		o.handle = func(err error) bool {
			var target E
			if !errors.As(err, &target) {
				return false
			}
			fn(target)
			return true
		}
	}
}

func newExecuteOptions(opts []ExecuteOption) executeOptions {
	var o executeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
