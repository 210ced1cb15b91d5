package palindrome

import (
	"math"
	"strconv"
	"testing"
)

func TestIsPalindrome(t *testing.T) {
	testCases := []struct {
		Description string
		Number      int32
		Want        bool
	}{
		{
			Description: "zero",
			Number:      0,
			Want:        true,
		},
		{
			Description: "single digit",
			Number:      7,
			Want:        true,
		},
		{
			Description: "largest single digit",
			Number:      9,
			Want:        true,
		},
		{
			Description: "trailing zero",
			Number:      10,
			Want:        false,
		},
		{
			Description: "repeated digit",
			Number:      11,
			Want:        true,
		},
		{
			Description: "odd length",
			Number:      121,
			Want:        true,
		},
		{
			Description: "even length",
			Number:      1221,
			Want:        true,
		},
		{
			Description: "ascending digits",
			Number:      123,
			Want:        false,
		},
		{
			Description: "mismatch in the middle",
			Number:      1231,
			Want:        false,
		},
		{
			Description: "ten digits",
			Number:      1_000_000_001,
			Want:        true,
		},
		{
			Description: "int32 maximum",
			Number:      math.MaxInt32,
			Want:        false,
		},
		{
			Description: "negative of a palindrome",
			Number:      -121,
			Want:        false,
		},
		{
			Description: "negative single digit",
			Number:      -1,
			Want:        false,
		},
		{
			Description: "int32 minimum",
			Number:      math.MinInt32,
			Want:        false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			if got := IsPalindrome(tc.Number); got != tc.Want {
				t.Errorf("IsPalindrome(%d) = %v, want %v", tc.Number, got, tc.Want)
			}
		})
	}
}

// reversedTextEqual is a test oracle only; the implementation itself must
// decompose digits arithmetically.
func reversedTextEqual(n int32) bool {
	if n < 0 {
		return false
	}
	s := strconv.FormatInt(int64(n), 10)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func TestIsPalindromeMatchesTextReversal(t *testing.T) {
	for n := int32(-1000); n <= 200_000; n++ {
		if got, want := IsPalindrome(n), reversedTextEqual(n); got != want {
			t.Fatalf("IsPalindrome(%d) = %v, want %v", n, got, want)
		}
	}
	for _, n := range []int32{2_147_447_412, 2_147_483_647, 1_999_999_991, -2_147_447_412} {
		if got, want := IsPalindrome(n), reversedTextEqual(n); got != want {
			t.Errorf("IsPalindrome(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsPalindromeIsPure(t *testing.T) {
	for _, n := range []int32{0, 7, 121, -121, 123, math.MaxInt32, math.MinInt32} {
		first := IsPalindrome(n)
		for i := 0; i < 3; i++ {
			if got := IsPalindrome(n); got != first {
				t.Fatalf("IsPalindrome(%d) drifted from %v to %v on repeat call", n, first, got)
			}
		}
	}
}

func TestDigitCount(t *testing.T) {
	testCases := []struct {
		Number int32
		Want   int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999_999_999, 9},
		{1_000_000_000, 10},
		{math.MaxInt32, 10},
		{-5, 1},
		{-10, 2},
		{math.MinInt32, 10},
	}

	for _, tc := range testCases {
		if got := DigitCount(tc.Number); got != tc.Want {
			t.Errorf("DigitCount(%d) = %d, want %d", tc.Number, got, tc.Want)
		}
	}
}

func TestDigitAt(t *testing.T) {
	const v = 9_876_543_210 // Too wide for int32, but digitAt works in 64 bits.
	for p := 0; p < 10; p++ {
		if got := digitAt(v, p, 10); got != int64(p) {
			t.Errorf("digitAt(%d, %d, 10) = %d, want %d", int64(v), p, got, p)
		}
	}
}

func TestDigitAtOutOfRangePanics(t *testing.T) {
	for _, p := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("digitAt(121, %d, 3) did not panic", p)
				}
			}()
			digitAt(121, p, 3)
		}()
	}
}
