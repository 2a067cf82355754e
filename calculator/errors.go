package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned, before any computation starts, when a
// physical parameter is out of its domain or not finite.
var ErrInvalidParameter = errors.New("calculator: invalid parameter")

// ParameterError 记录具体哪个参数不合法
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%v: %s = %g, %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(name string, value float64, reason string) error {
	return &ParameterError{Name: name, Value: value, Reason: reason}
}
