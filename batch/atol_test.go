package batch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peppermintpatty5/avl-tree/batch"
)

func TestAtol(t *testing.T) {
	tt := []struct {
		in  string
		exp int64
	}{
		{in: "5", exp: 5},
		{in: "-5", exp: -5},
		{in: "+7", exp: 7},
		{in: "  \t42", exp: 42},
		{in: "12abc", exp: 12},
		{in: "abc", exp: 0},
		{in: "", exp: 0},
		{in: "-", exp: 0},
		{in: "+-3", exp: 0},
		{in: "007", exp: 7},
		{in: "1 2", exp: 1},
		{in: "9223372036854775807", exp: math.MaxInt64},
		{in: "-9223372036854775808", exp: math.MinInt64},
		{in: "9223372036854775808", exp: math.MaxInt64},
		{in: "-9223372036854775809", exp: math.MinInt64},
		{in: "99999999999999999999999", exp: math.MaxInt64},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.exp, batch.Atol(tc.in))
		})
	}
}
