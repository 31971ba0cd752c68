package dict

import (
	"github.com/gf4t47/functional-maybe/maybe"
)

// Lookup returns the value stored under k, or Nothing when the key is
// absent. A stored zero value and a missing key are distinguished by the
// map's own comma-ok, never by inspecting the value. A nil reference
// stored under an existing key violates the Just precondition and
// panics; maps feeding a Lookup must not store nil values.
func Lookup[K comparable, V any](m map[K]V, k K) maybe.Maybe[V] {
	v, ok := m[k]
	return maybe.FromTuple(v, ok)
}

// LookupIn returns a lookup function bound to m, for composing with Bind
// and friends.
func LookupIn[K comparable, V any](m map[K]V) func(K) maybe.Maybe[V] {
	return maybe.Lift(func(k K) (V, bool) {
		v, ok := m[k]
		return v, ok
	})
}
