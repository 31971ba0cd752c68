package maybe

// Lift converts a comma-ok lookup function into a pure function returning
// a Maybe. The result is Just(v) exactly when tryGet reports ok, Nothing
// otherwise. Lift performs no lookup logic of its own and never fails;
// any failure belongs to the wrapped function.
func Lift[K, V any](tryGet func(K) (V, bool)) func(K) Maybe[V] {
	return func(k K) Maybe[V] {
		return FromTuple(tryGet(k))
	}
}

// LiftErr converts an error-returning function (typically a parser such
// as strconv.Atoi or uuid.Parse) into a pure function returning a Maybe.
// Any error collapses to Nothing; callers who need the error itself
// should call the original function directly.
func LiftErr[K, V any](f func(K) (V, error)) func(K) Maybe[V] {
	return func(k K) Maybe[V] {
		v, err := f(k)
		if err != nil {
			return Nothing[V]()
		}
		return Just(v)
	}
}
