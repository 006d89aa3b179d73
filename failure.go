package result

import "fmt"

// FailureError wraps a failure payload for propagation outside the
// Result type, either as a panic value (GetOrThrow) or as a rejected
// future's error. The raw payload is recoverable via Failure, or via
// errors.As/Unwrap when F is itself an error.
type FailureError[F any] struct {
	failure F
}

// NewFailureError returns a FailureError wrapping the given failure
// payload.
func NewFailureError[F any](failure F) *FailureError[F] {
	return &FailureError[F]{failure: failure}
}

// Failure returns the wrapped failure payload.
func (e *FailureError[F]) Failure() F {
	return e.failure
}

func (e *FailureError[F]) Error() string {
	return fmt.Sprintf("result: failure: %v", e.failure)
}

// Unwrap returns the wrapped payload if it is itself an error, and nil
// otherwise.
func (e *FailureError[F]) Unwrap() error {
	if err, ok := any(e.failure).(error); ok {
		return err
	}

	return nil
}
