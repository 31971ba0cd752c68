package maybe

import "errors"

var (
	// ErrNilJust is the fault raised by Just when asked to wrap a nil
	// reference: presence must never wrap absence.
	ErrNilJust = errors.New("maybe: Just called with a nil value")

	// ErrNoValue is the fault raised by Value (and returned by ValueOrErr)
	// when accessing a Nothing.
	ErrNoValue = errors.New("maybe: no value present")
)
