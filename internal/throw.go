package internal

import "github.com/pkg/errors"

// Threading error returns through the recursive merge and the circulator
// walks would add a ton of complexity to code that otherwise cannot fail.
// Instead, contract violations use panics, and the public API recovers to
// convert to an error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleMergeHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
