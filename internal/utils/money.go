package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatLKR renders an amount as "LKR 12,500": thousands separators, no
// decimals. Negative amounts are clamped to zero; room prices never go below.
func FormatLKR(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	return "LKR " + formatThousand(int64(math.Round(amount)))
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
