package uwc

import (
	"fmt"
)

// InputError represents a failure to open or read one input operand.
// Counting itself cannot fail; all errors originate in I/O.
type InputError struct {
	Path string // Operand as given on the command line
	Err  error  // Underlying cause
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
