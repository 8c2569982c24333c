// Package optional provides type safe optional variables.
package optional

import (
	"errors"
	"fmt"
)

var ErrIsEmpty = errors.New("optional is empty")

// Optional represents a variable that may contain a value or not.
//
// Note that the zero value of an Optional is an empty Optional.
type Optional[T any] struct {
	value     T
	isPresent bool
}

// New returns a new Optional with a value.
func New[T any](v T) Optional[T] {
	return Optional[T]{value: v, isPresent: true}
}

// IsEmpty reports wether an Optional is empty.
func (o Optional[T]) IsEmpty() bool {
	return !o.isPresent
}

// Present reports wether an Optional contains a value.
func (o Optional[T]) Present() bool {
	return o.isPresent
}

// Set sets a new value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.isPresent = true
}

// Clear removes any value.
func (o *Optional[T]) Clear() {
	var z T
	o.value = z
	o.isPresent = false
}

// String returns a string representation of an Optional.
func (o Optional[T]) String() string {
	if o.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprint(o.value)
}

// Value returns the value of an Optional.
func (o Optional[T]) Value() (T, error) {
	var z T
	if o.IsEmpty() {
		return z, ErrIsEmpty
	}
	return o.value, nil
}

// ValueOrFallback returns the value of an Optional or a fallback if it is empty.
func (o Optional[T]) ValueOrFallback(fallback T) T {
	if o.IsEmpty() {
		return fallback
	}
	return o.value
}

// ValueOrZero returns the value of an Optional or it's type's zero value if it is empty.
func (o Optional[T]) ValueOrZero() T {
	var z T
	if o.IsEmpty() {
		return z
	}
	return o.value
}
