package pipeline

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is wrapped by every ConfigurationError.
var ErrUnknownMethod = errors.New("unknown pseudolocalization method")

// ConfigurationError is returned by Build for method specifications
// naming methods which are not registered. Name is the offending name,
// Spec the complete specification.
type ConfigurationError struct {
	Name string
	Spec string
}

func (e *ConfigurationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("pseudoloc pipeline: empty method name in %q", e.Spec)
	}
	return fmt.Sprintf("pseudoloc pipeline: %v %q in %q", ErrUnknownMethod, e.Name, e.Spec)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrUnknownMethod
}
