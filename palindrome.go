// Package palindrome classifies signed 32-bit integers as decimal
// palindromes and filters collections of them in parallel.
package palindrome

import "fmt"

// pow10 maps a decimal place to its place value. An int32 magnitude spans
// at most 10 digits, so places 0 through 9 cover the whole domain.
var pow10 = [10]int64{
	1, 10, 100, 1_000, 10_000,
	100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// DigitCount returns the number of decimal digits in the absolute value of
// n: 1 for 0 through 9, up to 10 at either extreme of the int32 range.
func DigitCount(n int32) int {
	v := int64(n) // In 64 bits, so negating math.MinInt32 is exact.
	if v < 0 {
		v = -v
	}
	count := 1
	for v >= 10 {
		v /= 10
		count++
	}
	return count
}

// IsPalindrome reports whether the decimal representation of n reads the
// same forward and backward.
//
// A negative number is never a palindrome: the minus sign breaks the
// symmetry rather than being ignored. Zero and all other single-digit
// numbers are trivially palindromic.
//
// The comparison works digit by digit through arithmetic decomposition,
// never through a textual representation.
func IsPalindrome(n int32) bool {
	if n < 0 {
		return false
	}
	v := int64(n)
	digits := DigitCount(n)
	for left, right := 0, digits-1; left < right; left, right = left+1, right-1 {
		if digitAt(v, left, digits) != digitAt(v, right, digits) {
			return false
		}
	}
	return true
}

// digitAt returns the decimal digit of v at place p, where place 0 is the
// ones digit. Callers derive p from the digit count of v, so a p outside
// [0, digits) is a programming fault; digitAt panics rather than computing
// a digit that does not exist.
func digitAt(v int64, p, digits int) int64 {
	if p < 0 || p >= digits {
		panic(fmt.Sprintf("palindrome: digit place %d out of range for a %d-digit value", p, digits))
	}
	return v / pow10[p] % 10
}
