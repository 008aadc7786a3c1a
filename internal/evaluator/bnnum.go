package evaluator

import (
	"strconv"
	"strings"

	"github.com/pakhi-lang/pakhi/internal/config"
)

// Digit glyph translation. Only the ten digits are mapped; every other rune,
// including the sign, decimal point and the letters of Inf and NaN, passes
// through unchanged.

func ToBengaliDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = r - '0' + '০'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func ToEnglishDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '০' && r <= '৯' {
			r = r - '০' + '0'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatNum renders a number the way দেখাও does: shortest decimal notation,
// never scientific, with Bengali digit glyphs.
func FormatNum(n float64) string {
	return ToBengaliDigits(strconv.FormatFloat(n, 'f', -1, 64))
}

func FormatBool(b bool) string {
	if b {
		return config.TrueLiteral
	}
	return config.FalseLiteral
}

// ParseNum accepts Bengali or ASCII digit glyphs.
func ParseNum(s string) (float64, error) {
	return strconv.ParseFloat(ToEnglishDigits(strings.TrimSpace(s)), 64)
}
