package batch

import "math"

// Atol converts the leading decimal integer of s the way C's atol does:
// leading whitespace and one sign are accepted, parsing stops at the first
// non-digit, and input without digits yields 0. It never fails. Values out
// of range saturate at math.MinInt64 / math.MaxInt64.
func Atol(s string) int64 {
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
	overflow := false
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		d := uint64(s[i] - '0')
		if overflow || n > (limit-d)/10 {
			overflow = true
			continue
		}
		n = n*10 + d
	}

	switch {
	case overflow && neg:
		return math.MinInt64
	case overflow:
		return math.MaxInt64
	case neg:
		return -int64(n)
	default:
		return int64(n)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
