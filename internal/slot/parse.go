package slot

import (
	"errors"
	"strconv"
)

// ErrZero is returned by PositiveUint32 for "0".
var ErrZero = errors.New("value must be at least 1")

// String accepts any text, including the empty string.
func String(s string) (string, error) {
	return s, nil
}

// NonEmpty accepts any text except the empty string.
func NonEmpty(s string) (string, error) {
	if s == "" {
		return "", errors.New("value must not be empty")
	}
	return s, nil
}

// PositiveUint32 parses a decimal integer in [1, math.MaxUint32].
func PositiveUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, numError(err)
	}
	if n == 0 {
		return 0, ErrZero
	}
	return uint32(n), nil
}

// Uint64 parses a non-negative decimal integer.
func Uint64(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, numError(err)
	}
	return n, nil
}

// Float64 parses a floating point number.
func Float64(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, numError(err)
	}
	return f, nil
}

// numError drops strconv's function and input prefix; the caller already
// reports the flag and the value.
func numError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
