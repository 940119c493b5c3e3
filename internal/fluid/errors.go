package fluid

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when an insertion would exceed the solver's
// configured particle capacity.
var ErrCapacity = errors.New("fluid: particle capacity exceeded")

// InvalidParameterError reports a non-positive construction parameter
// that was rejected at New.
type InvalidParameterError struct {
	Field string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("fluid: invalid parameter %s = %v, must be positive", e.Field, e.Value)
}
