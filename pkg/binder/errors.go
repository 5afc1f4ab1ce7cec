package binder

import (
	"errors"
	"fmt"
)

// ArgumentError reports which argument source failed while an Action was
// resolving. Op is zero for members of a Group.
type ArgumentError struct {
	Op    Operation
	Index int
	Err   error
}

func (e *ArgumentError) Error() string {
	if e.Op == 0 {
		return fmt.Sprintf("group member %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("%s argument %d: %v", e.Op, e.Index, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Cause strips every ArgumentError layer from err and returns the error the
// failing source produced. Other errors are returned unchanged.
func Cause(err error) error {
	for {
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			return err
		}
		err = argErr.Err
	}
}
