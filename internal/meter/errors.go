package meter

import (
	"errors"
	"fmt"
)

var (
	ErrNilHandler      = errors.New("exception handler must not be nil")
	ErrEmptyMethodName = errors.New("method name must not be empty")
)

// PanicError carries a panic recovered from watched code.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
