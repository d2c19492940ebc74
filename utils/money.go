package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR formats an amount in rupees as a string like "₹1,23,456.50".
// Uses the Indian grouping: the last three digits, then pairs. The paise
// part is printed only when the amount is not whole.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to paise before splitting off the fraction.
	amount = math.Round(amount*100) / 100
	whole := int64(amount)
	paise := int64(math.Round((amount - float64(whole)) * 100))

	s := strconv.FormatInt(whole, 10)

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 5)
	if neg {
		b.WriteString("-₹")
	} else {
		b.WriteString("₹")
	}

	if len(s) <= 3 {
		b.WriteString(s)
	} else {
		// Head is everything before the last three digits, grouped in pairs.
		head := s[:len(s)-3]
		rem := len(head) % 2
		if rem == 0 {
			rem = 2
		}
		b.WriteString(head[:rem])
		for i := rem; i < len(head); i += 2 {
			b.WriteByte(',')
			b.WriteString(head[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(s[len(s)-3:])
	}

	if paise > 0 {
		b.WriteByte('.')
		if paise < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(paise, 10))
	}

	return b.String()
}
