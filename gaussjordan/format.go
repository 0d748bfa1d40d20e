package gaussjordan

import (
	"math"
	"strconv"
)

// formatEpsilon is the fixed display threshold: values this close to zero
// render as "0", values this close to an integer render without decimals.
// It is a presentation constant, independent of Options.Tolerance.
const formatEpsilon = 1e-10

// subscriptDigits maps decimal digits to their unicode subscript forms.
var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// subscript renders a non-negative integer with unicode subscript digits,
// e.g. 10 → "₁₀". Used for 1-based row labels in E-notation.
func subscript(n int) string {
	if n == 0 {
		return string(subscriptDigits[0])
	}
	// Collect digits most-significant first.
	var buf [4]rune // row labels never exceed two digits; headroom is cheap
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = subscriptDigits[n%10]
		n /= 10
	}

	return string(buf[i:])
}

// formatNumber renders a scalar for operation descriptions:
// near-zero → "0", near-integer → integer form, otherwise 4 decimals.
func formatNumber(v float64) string {
	switch {
	case math.Abs(v) < formatEpsilon:
		return "0"
	case math.Abs(v-math.Round(v)) < formatEpsilon:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// swapDesc renders Eᵢ,ⱼ for a swap of 0-based rows i and j.
func swapDesc(i, j int) string {
	return "E" + subscript(i+1) + "," + subscript(j+1)
}

// scaleDesc renders Eᵢ(k) for scaling 0-based row i by k.
func scaleDesc(i int, k float64) string {
	return "E" + subscript(i+1) + "(" + formatNumber(k) + ")"
}

// addMultipleDesc renders Eᵢ,ⱼ(k) for 0-based row dst += k·row src.
func addMultipleDesc(dst, src int, k float64) string {
	return "E" + subscript(dst+1) + "," + subscript(src+1) + "(" + formatNumber(k) + ")"
}
