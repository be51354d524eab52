package cli

import (
	"fmt"
	"math"
	"strconv"
)

// parsePID converts the pid argument to the width the kernel APIs take.
//
// By default it reads like the C runtime's _atoi64: leading whitespace, an
// optional sign, then digits up to the first non-digit. Trailing garbage is
// ignored, no digits yield 0, and out-of-range values saturate. The int64 is
// then truncated to uint32, so "-1" becomes 4294967295. In strict mode the
// whole argument must be a decimal uint32.
func parsePID(s string, strict bool) (uint32, error) {
	if strict {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid pid %q: %w", s, err)
		}
		return uint32(v), nil
	}
	return uint32(atoi64(s)), nil
}

func atoi64(s string) int64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var n uint64
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if n > (limit-d)/10 {
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}

	if neg {
		return -int64(n)
	}
	return int64(n)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
