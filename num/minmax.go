package num

import "github.com/hyp3rd/numstats/types"

// Min returns the smaller of a and b with IEEE 754 minNum semantics: when
// exactly one operand is NaN the other wins; when both are NaN the result is
// NaN. Integers use total ordering (the NaN branches never fire since only
// floats compare unequal to themselves).
func Min[T types.Number](a, b T) T {
	if a != a {
		return b
	}

	if b != b {
		return a
	}

	if b < a {
		return b
	}

	return a
}

// Max returns the larger of a and b with IEEE 754 maxNum semantics; NaN
// never wins against a real number.
func Max[T types.Number](a, b T) T {
	if a != a {
		return b
	}

	if b != b {
		return a
	}

	if b > a {
		return b
	}

	return a
}
