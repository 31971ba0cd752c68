package maybe

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Maybe represents an optional value of type T: every Maybe is either Just
// (contains a value) or Nothing (does not). The zero value is Nothing.
//
// A Maybe is immutable once constructed, so instances can be shared freely
// across goroutines. When T is comparable, Maybe[T] is comparable too:
// == and map-key hashing follow T's own equality, and all Nothing values
// of the same T are equal to each other.
type Maybe[T any] struct {
	val T
	has bool
}

// Just creates a Maybe containing the given value.
// Panics with ErrNilJust if val is a nil pointer, interface, map, slice,
// channel or function: presence must never wrap absence. The check is
// always enforced, there is no release-mode bypass.
func Just[T any](val T) Maybe[T] {
	if isNil(val) {
		panic(errors.WithStack(ErrNilJust))
	}
	return Maybe[T]{val: val, has: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr converts a possibly-nil pointer into a Maybe over the pointee.
// The pointee itself must satisfy the Just precondition: a non-nil
// pointer to a nil reference panics like Just.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// FromTuple converts a comma-ok pair into a Maybe.
// A pair reporting ok with a nil value is a contract violation by the
// producer and panics like Just.
func FromTuple[T any](val T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(val)
}

// HasValue returns true if the Maybe contains a value.
func (m Maybe[T]) HasValue() bool {
	return m.has
}

// IsNothing returns true if the Maybe does not contain a value.
func (m Maybe[T]) IsNothing() bool {
	return !m.has
}

// Value returns the contained value.
// Panics with ErrNoValue if the Maybe is Nothing. Callers are expected to
// have checked HasValue first, or to treat the panic as a programming
// error; ValueOrErr is the non-panicking form.
func (m Maybe[T]) Value() T {
	if !m.has {
		panic(errors.WithStack(ErrNoValue))
	}
	return m.val
}

// ValueOrErr returns the contained value, or ErrNoValue if the Maybe is
// Nothing.
func (m Maybe[T]) ValueOrErr() (T, error) {
	if !m.has {
		var zero T
		return zero, errors.WithStack(ErrNoValue)
	}
	return m.val, nil
}

// Get returns the value and a boolean indicating whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.val, m.has
}

// OrElse returns the contained value or the provided default.
func (m Maybe[T]) OrElse(def T) T {
	if m.has {
		return m.val
	}
	return def
}

// OrElseCompute returns the contained value or computes one from the
// supplier. The supplier is only invoked when the Maybe is Nothing.
func (m Maybe[T]) OrElseCompute(supplier func() T) T {
	if m.has {
		return m.val
	}
	return supplier()
}

// OrZero returns the contained value or the zero value of T.
func (m Maybe[T]) OrZero() T {
	return m.val
}

// ToPtr returns a pointer to a copy of the contained value, or nil if the
// Maybe is Nothing.
func (m Maybe[T]) ToPtr() *T {
	if !m.has {
		return nil
	}
	v := m.val
	return &v
}

// ToSlice returns a single-element slice with the contained value, or an
// empty slice if the Maybe is Nothing.
func (m Maybe[T]) ToSlice() []T {
	if !m.has {
		return []T{}
	}
	return []T{m.val}
}

// Equal reports whether two Maybe values are equal: both Nothing, or both
// Just with payloads equal under ==.
func Equal[T comparable](a, b Maybe[T]) bool {
	return a == b
}

// EqualFunc reports whether two Maybe values are equal, comparing payloads
// with eq. eq is only consulted when both values are present.
func EqualFunc[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	if a.has != b.has {
		return false
	}
	if !a.has {
		return true
	}
	return eq(a.val, b.val)
}

// String implements fmt.Stringer: the payload's own rendering when
// present, the literal "<Nothing>" otherwise. Diagnostics only, the form
// does not round-trip.
func (m Maybe[T]) String() string {
	if m.has {
		return fmt.Sprint(m.val)
	}
	return "<Nothing>"
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
