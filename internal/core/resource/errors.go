package resource

import (
	"errors"
	"fmt"
)

// Resource-specific errors.
var (
	ErrNilDevice = errors.New("resource: nil device")
	ErrNilQueue  = errors.New("resource: nil queue")
)

// LoadError reports a failed texture load: the file could not be opened,
// decoded, or realized on the GPU. The cache is never mutated on failure and
// no placeholder content is substituted.
type LoadError struct {
	Key  string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("resource: load texture %q from %s: %v", e.Key, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
