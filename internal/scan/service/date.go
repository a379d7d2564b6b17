package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	rxYMD  = regexp.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`)
	rxDMY  = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})\b`)
	rxDMYY = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{2})\b`)
)

// last-resort layouts for dates the model spelled out instead of writing
// numerically
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"2006/01/02",
}

// NormalizeInvoiceDate turns a raw OCR date guess into "YYYY-MM-DD", or ""
// when nothing usable can be read. Formats are tried in a fixed order and the
// first hit wins. Fully ambiguous D/M inputs (both parts <= 12) resolve
// day-first — the convention on invoices in the source region. That default
// is intentional and must stay predictable; do not infer per input.
func NormalizeInvoiceDate(raw string) string {
	s := strings.TrimSpace(digitsToASCII(raw))
	if s == "" {
		return ""
	}

	// ISO-shaped: pass through with zero padding
	if m := rxYMD.FindStringSubmatch(s); m != nil {
		y, mo, d := atoiNum(m[1]), atoiNum(m[2]), atoiNum(m[3])
		if calendarOK(y, mo, d) {
			return formatISO(y, mo, d)
		}
	}

	// D-M-YYYY with the day/month heuristic
	if m := rxDMY.FindStringSubmatch(s); m != nil {
		d, mo := resolveDayMonth(atoiNum(m[1]), atoiNum(m[2]))
		y := atoiNum(m[3])
		if calendarOK(y, mo, d) {
			return formatISO(y, mo, d)
		}
	}

	// D-M-YY: two-digit year expands via pivot (00-50 -> 2000s, 51-99 -> 1900s)
	if m := rxDMYY.FindStringSubmatch(s); m != nil {
		d, mo := resolveDayMonth(atoiNum(m[1]), atoiNum(m[2]))
		y := atoiNum(m[3])
		if y <= 50 {
			y += 2000
		} else {
			y += 1900
		}
		if calendarOK(y, mo, d) {
			return formatISO(y, mo, d)
		}
	}

	// generic calendar parsing; format via UTC fields so the date never
	// shifts with the host timezone
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}

	return ""
}

// resolveDayMonth applies the disambiguation heuristic to the first two
// numeric groups of a D-M-Y shaped date: a group over 12 is unambiguously the
// day; otherwise day-first.
func resolveDayMonth(first, second int) (day, month int) {
	switch {
	case first > 12:
		return first, second
	case second > 12:
		return second, first
	default:
		return first, second
	}
}

// calendarOK rejects regex hits that are not actually dates (month 13, day 0
// and the like) so scanning can fall through to the next format.
func calendarOK(y, mo, d int) bool {
	return y >= 1000 && y <= 9999 && mo >= 1 && mo <= 12 && d >= 1 && d <= 31
}

func formatISO(y, mo, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
}

func atoiNum(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
