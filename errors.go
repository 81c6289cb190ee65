// errors.go - contract violations for the fixed-point oscillator core
//
// Out-of-range inputs, invalid conversions, and broken container
// invariants are all caller bugs. None of it is recoverable locally, so
// it is reported the way the teacher reports an unreachable hardware
// state in audio_chip.go (log then panic) — generalised into a typed
// panic value so a driving CLI can recover() at its own boundary and
// print a clean diagnostic instead of a raw stack trace.

package main

import "fmt"

// DomainError reports an input outside its declared Q-format or
// oscillator-parameter range.
type DomainError struct {
	Msg   string
	Value int64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s (value=%d)", e.Msg, e.Value)
}

// domainPanic raises a DomainError as a panic value. Callers that need
// to convert a caller bug into an ordinary error (e.g. the CLI) should
// recover() and type-assert to *DomainError at their boundary.
func domainPanic(msg string, value int64) {
	panic(&DomainError{Msg: msg, Value: value})
}

// invariantPanic reports a broken container invariant: unused high
// bits that are not the sign extension (signed) or not zero
// (unsigned). This can only happen from a bug inside this package's
// own conversions, never from caller input, so it is not a
// DomainError.
func invariantPanic(msg string) {
	panic("qfixed: invariant violated: " + msg)
}

// recoverDomainError converts a recovered panic value into an error,
// re-panicking anything that isn't a *DomainError. Intended for use at
// a driver's top-level boundary (see main.go).
func recoverDomainError(r any) error {
	if r == nil {
		return nil
	}
	if de, ok := r.(*DomainError); ok {
		return de
	}
	panic(r)
}
