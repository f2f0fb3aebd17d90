package tile

import "fmt"

// OperationError reports an invalid-parameter rejection at the entry to a
// core operation (Morph, Blur, FindGaps). Per spec.md §7 these are rejected
// at entry with a diagnostic and produce no output — never a panic.
type OperationError struct {
	Op     string
	Reason string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("tilepost: %s: %s", e.Op, e.Reason)
}

// NewOperationError constructs an OperationError for op, formatting reason
// the way fmt.Errorf would.
func NewOperationError(op, format string, args ...any) error {
	return &OperationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
