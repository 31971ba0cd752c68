package maybe

// Type-changing combinators are free functions because Go does not support
// type parameters on methods.

// Map applies a function to the contained value (if Just), or returns
// Nothing (if Nothing). Any failure in f propagates unchanged. The
// result is re-wrapped through Just and inherits its precondition: an f
// that returns a nil reference panics with ErrNilJust.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.has {
		return Just(f(m.val))
	}
	return Nothing[U]()
}

// MapOr applies a function to the contained value (if Just), or returns
// the provided default (if Nothing).
func MapOr[T, U any](m Maybe[T], def U, f func(T) U) U {
	if m.has {
		return f(m.val)
	}
	return def
}

// Bind returns Nothing if the Maybe is Nothing, otherwise calls f with the
// contained value and returns the result. Bind(m, f) is equivalent to
// Flatten(Map(m, f)).
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if m.has {
		return f(m.val)
	}
	return Nothing[U]()
}

// Flatten collapses a nested Maybe: Nothing stays Nothing, Just(Nothing)
// becomes Nothing, Just(Just(v)) becomes Just(v).
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if inner, ok := m.Get(); ok {
		return inner
	}
	return Nothing[T]()
}

// Zip combines two Maybe values with f, yielding Nothing if either is
// Nothing. This is the two-source comprehension
//
//	from a in ma from b in mb select f(a, b)
//
// expressed directly as Bind over Map.
func Zip[A, B, C any](ma Maybe[A], mb Maybe[B], f func(A, B) C) Maybe[C] {
	return Bind(ma, func(a A) Maybe[C] {
		return Map(mb, func(b B) C {
			return f(a, b)
		})
	})
}

// Filter returns the Maybe unchanged if it is Just and the predicate holds
// for its value, otherwise Nothing. The predicate is not invoked when the
// Maybe is Nothing.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.has && pred(m.val) {
		return m
	}
	return Nothing[T]()
}

// Or returns the Maybe if it contains a value, otherwise alt.
func (m Maybe[T]) Or(alt Maybe[T]) Maybe[T] {
	if m.has {
		return m
	}
	return alt
}

// Do invokes f with the contained value when present and returns the
// receiver unchanged. Useful for side effects in the middle of a chain.
func (m Maybe[T]) Do(f func(T)) Maybe[T] {
	if m.has {
		f(m.val)
	}
	return m
}

// Match invokes some with the contained value when present, none
// otherwise.
func (m Maybe[T]) Match(some func(T), none func()) {
	if m.has {
		some(m.val)
		return
	}
	none()
}
