package report

import (
	"fmt"
	"strconv"
	"strings"
)

// groupDigits inserts thousands separators into a plain integer string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}

// fmtInt renders money and count fields: truncated to an integer with
// group separators.
func fmtInt(v float64) string {
	return groupDigits(strconv.FormatInt(int64(v), 10))
}

// fmtQty renders quantities with two decimals and a grouped integer part.
func fmtQty(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return groupDigits(s[:dot]) + s[dot:]
}

// fmtRate2 renders ratio fields (UPT) with fixed two-decimal precision.
func fmtRate2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// fmtPercent renders one-decimal percentages with the literal suffix.
func fmtPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// fmtSignedPP renders signed percent-point diffs, e.g. "+1.2%p".
func fmtSignedPP(v float64) string {
	return fmt.Sprintf("%+.1f%%p", v)
}

// fmtHour renders an hour-of-day table cell, e.g. "09시".
func fmtHour(h int) string {
	return fmt.Sprintf("%02d시", h)
}

// labelOrDash substitutes the dash placeholder for empty text fields.
func labelOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
