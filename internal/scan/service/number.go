package service

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// keep only what strconv.ParseFloat can digest
var rxKeepNum = regexp.MustCompile(`[^0-9.\-]`)

// thousands separators seen on handwritten invoices: ASCII comma,
// fullwidth comma, Arabic thousands separator
var sepReplacer = strings.NewReplacer(",", "", "，", "", "٬", "")

// digitsToASCII transliterates Arabic-Indic (U+0660..U+0669) and Extended
// Arabic-Indic (U+06F0..U+06F9) digit glyphs to 0-9 and maps the Arabic
// decimal separator U+066B to a dot.
func digitsToASCII(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x0660 && r <= 0x0669:
			return '0' + (r - 0x0660)
		case r >= 0x06F0 && r <= 0x06F9:
			return '0' + (r - 0x06F0)
		case r == 0x066B:
			return '.'
		}
		return r
	}, s)
}

// ParseFlexibleNumber coerces whatever the OCR model put into a numeric field
// to a float64. Already-numeric input passes through; strings get trimmed,
// digit-transliterated and stripped of separators and currency junk.
// Unparseable input degrades to 0 — never NaN, never an error.
func ParseFlexibleNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return ParseFlexibleNumber(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		return parseNumericString(n.String())
	case string:
		return parseNumericString(n)
	}
	return 0
}

func parseNumericString(s string) float64 {
	s = digitsToASCII(strings.TrimSpace(s))
	s = sepReplacer.Replace(s)
	s = rxKeepNum.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
