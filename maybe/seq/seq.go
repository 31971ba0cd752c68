// Package seq builds Maybe values from slice searches. The search rules
// are fixed here (first means lowest index); the maybe package only wraps
// the outcome.
package seq

import (
	"github.com/gf4t47/functional-maybe/maybe"
)

// First returns the first element of s, or Nothing when s is empty.
func First[T any](s []T) maybe.Maybe[T] {
	if len(s) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s[0])
}

// Last returns the last element of s, or Nothing when s is empty.
func Last[T any](s []T) maybe.Maybe[T] {
	if len(s) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s[len(s)-1])
}

// Single returns the sole element of s. Nothing when s is empty or holds
// more than one element.
func Single[T any](s []T) maybe.Maybe[T] {
	if len(s) != 1 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s[0])
}

// FirstWhere returns the first element satisfying pred, or Nothing when
// none does.
func FirstWhere[T any](s []T, pred func(T) bool) maybe.Maybe[T] {
	for _, v := range s {
		if pred(v) {
			return maybe.Just(v)
		}
	}
	return maybe.Nothing[T]()
}

// Values returns the payloads of the present elements of s, in order.
func Values[T any](s []maybe.Maybe[T]) []T {
	out := make([]T, 0, len(s))
	for _, m := range s {
		if v, ok := m.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Collect applies a partial function to every element of s and returns
// the payloads of the hits, in order.
func Collect[T, U any](s []T, f func(T) maybe.Maybe[U]) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		if u, ok := f(v).Get(); ok {
			out = append(out, u)
		}
	}
	return out
}
