package account

import (
	"math"
	"strconv"
	"strings"
)

// FormatNaira renders a monetary value as the frontend expects it: the
// naira sign followed by the value with thousands separators, e.g.
// ₦90,000 or ₦1,234.57.
func FormatNaira(v float64) string {
	return "₦" + localeNumber(v)
}

// localeNumber reproduces JavaScript's Number.prototype.toLocaleString()
// under the en-US default: comma grouping and at most three fraction
// digits, trailing zeros dropped.
func localeNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.Abs(v) < 1e15 {
		v = math.Round(v*1000) / 1000
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if hasFrac {
		if len(fracPart) > 3 {
			fracPart = fracPart[:3]
		}
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
