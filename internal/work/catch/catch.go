// Package catch confines the effects of panics and [runtime.Goexit] calls.
package catch

import "runtime"

type outcome int8

const (
	returned outcome = iota
	panicked
	goexited
)

// Result captures the exit behavior of a function: a normal return, a
// panic, or a call to [runtime.Goexit]. The zero Result behaves as if
// capturing the return of a zero value and nil error.
type Result[T any] struct {
	outcome  outcome
	value    T
	err      error
	panicval any
}

// Run executes fn in the current goroutine and captures its return or
// panic. It does not capture [runtime.Goexit]; callers that need Goexit
// safety should pre-assign the result of [Goexit] before overwriting it
// with the result of Run, as the assignment will never execute if fn
// unwinds the goroutine.
func Run[T any](fn func() (T, error)) (r Result[T]) {
	finished := false
	func() {
		defer func() {
			if !finished {
				r = Panic[T](recover())
			}
		}()
		value, err := fn()
		finished = true
		r = Return(value, err)
	}()
	return
}

// Return constructs a synthetic result capturing "return value, err".
func Return[T any](value T, err error) Result[T] {
	return Result[T]{outcome: returned, value: value, err: err}
}

// Panic constructs a synthetic result capturing "panic(panicval)".
func Panic[T any](panicval any) Result[T] {
	return Result[T]{outcome: panicked, panicval: panicval}
}

// Goexit constructs a synthetic result capturing [runtime.Goexit].
func Goexit[T any]() Result[T] {
	return Result[T]{outcome: goexited}
}

// Unwrap propagates the captured behavior to the current goroutine:
// returning the function's values, panicking, or calling [runtime.Goexit].
// It returns, rather than panics or Goexits, if and only if
// [Result.Returned] is true. There is no accessor that quietly converts an
// abnormal exit into a value; callers must inspect and handle those cases.
func (r Result[T]) Unwrap() (T, error) {
	switch r.outcome {
	case panicked:
		panic(r.panicval)
	case goexited:
		runtime.Goexit()
		panic("continued after runtime.Goexit")
	default:
		return r.value, r.err
	}
}

// Returned is true if this result captures a normal return.
func (r Result[T]) Returned() bool { return r.outcome == returned }

// Panicked is true if this result captures a panic.
func (r Result[T]) Panicked() bool { return r.outcome == panicked }

// Goexited is true if this result captures [runtime.Goexit].
func (r Result[T]) Goexited() bool { return r.outcome == goexited }

// Recovered returns any panic value captured by this result. A nil
// Recovered value does not distinguish a true "panic(nil)" from a non-panic
// result; [Result.Panicked] does.
func (r Result[T]) Recovered() any { return r.panicval }
