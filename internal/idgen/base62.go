package idgen

import (
	"errors"
	"fmt"
	"math"
)

const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var ErrInvalidID = errors.New("invalid id")

var base62Index [256]int8

func init() {
	for i := range base62Index {
		base62Index[i] = -1
	}
	for i := 0; i < len(base62Chars); i++ {
		base62Index[base62Chars[i]] = int8(i)
	}
}

// Encode renders a non-negative number in base62. Negative input encodes as "0".
func Encode(num int64) string {
	if num <= 0 {
		return "0"
	}

	var buf [11]byte
	i := len(buf)
	for num > 0 {
		i--
		buf[i] = base62Chars[num%62]
		num /= 62
	}
	return string(buf[i:])
}

// Decode parses a base62 string, rejecting unknown characters, values
// that overflow int64 and leading zeros. Only the form Encode produces is
// accepted, so one number has exactly one string.
func Decode(str string) (int64, error) {
	if str == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidID)
	}
	if len(str) > 1 && str[0] == '0' {
		return 0, fmt.Errorf("%w: %q has a leading zero", ErrInvalidID, str)
	}

	var num int64
	for i := 0; i < len(str); i++ {
		val := base62Index[str[i]]
		if val < 0 {
			return 0, fmt.Errorf("%w: invalid base62 character %q", ErrInvalidID, str[i])
		}
		if num > (math.MaxInt64-int64(val))/62 {
			return 0, fmt.Errorf("%w: %q overflows int64", ErrInvalidID, str)
		}
		num = num*62 + int64(val)
	}
	return num, nil
}
