package palindrome

import (
	"errors"
	"runtime"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/HovsepH/PalindromeNumberFilteringParallel/internal/work"
)

// ErrNilInput is returned when a nil slice is passed in place of a sequence
// of numbers.
var ErrNilInput = errors.New("palindrome: nil input sequence")

// Filter returns the elements of numbers that are decimal palindromes.
//
// Elements are evaluated independently by parallel workers and matches are
// appended to a shared accumulator as they are found, so the order of the
// result is unspecified and may differ between runs. Equal values keep
// their multiplicity: duplicates in the input produce duplicates in the
// output. The input slice is never mutated, and no state survives the call.
//
// Passing a nil slice returns ErrNilInput with no work performed. A non-nil
// empty slice returns an empty, non-nil result.
func Filter(numbers []int32) ([]int32, error) {
	return FilterWorkers(numbers, runtime.GOMAXPROCS(0))
}

// FilterWorkers behaves like [Filter] with an explicit bound on the number
// of concurrent workers. If workers <= 0, every element is evaluated in its
// own goroutine.
func FilterWorkers(numbers []int32, workers int) ([]int32, error) {
	if numbers == nil {
		return nil, ErrNilInput
	}

	var matches work.Collector[int32]
	pool := work.NewPool(workers, work.NoValueHandler(func(n int32) error {
		if IsPalindrome(n) {
			matches.Add(n)
		}
		return nil
	}))
	if _, err := pool.Run(numbers); err != nil {
		return nil, err
	}
	return matches.Slice(), nil
}

// FilterDistinct behaves like [Filter] but collapses equal values: each
// distinct palindromic value in numbers appears exactly once in the result,
// in an unspecified order. The accumulator is a concurrency-safe set, so
// duplicate matches found by different workers coalesce without
// coordination between them.
func FilterDistinct(numbers []int32) ([]int32, error) {
	if numbers == nil {
		return nil, ErrNilInput
	}

	found := mapset.NewSet[int32]()
	pool := work.NewPool(runtime.GOMAXPROCS(0), work.NoValueHandler(func(n int32) error {
		if IsPalindrome(n) {
			found.Add(n)
		}
		return nil
	}))
	if _, err := pool.Run(numbers); err != nil {
		return nil, err
	}
	return found.ToSlice(), nil
}
