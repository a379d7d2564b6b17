package service

import (
	"regexp"
	"strings"
	"unicode"
)

// Business constants for catalog snapping. Tuned against real scanned
// invoices; tests pin them, change deliberately.
const (
	// MatchThreshold is the minimum similarity at which a noisy OCR name is
	// replaced by the canonical catalog spelling.
	MatchThreshold = 0.72
	// ContainmentScore is awarded when one normalized name contains the
	// other: below exact, above what edit distance gives short strings, so a
	// model-code suffix hit still snaps.
	ContainmentScore = 0.92
)

// blend weights for the sub-containment score
const (
	editWeight    = 0.65
	jaccardWeight = 0.35
)

// handwriting-OCR confusable glyphs, folded before comparison so "4l90l-2"
// and "41901-2" read the same
var confusables = map[rune]rune{
	'o': '0',
	'l': '1',
	'i': '1',
	's': '5',
	'b': '8',
	'z': '2',
}

// everything outside CJK ideographs / a-z / 0-9 is noise for matching
var rxNameNoise = regexp.MustCompile(`[^\p{Han}a-z0-9]+`)

// normalizeName lowercases, strips separators and punctuation, and folds
// OCR confusables. Empty output means the name carried nothing comparable.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = rxNameNoise.ReplaceAllString(s, "")
	return foldConfusables(s)
}

func foldConfusables(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := confusables[r]; ok {
			return d
		}
		return r
	}, s)
}

// ScoreNameSimilarity scores how well an OCR-read product name matches a
// catalog name, in [0,1]. Exact (after normalization) beats containment
// beats the blended edit-distance / token-Jaccard score.
func ScoreNameSimilarity(source, target string) float64 {
	a := normalizeName(source)
	b := normalizeName(target)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return ContainmentScore
	}

	score := editWeight*levenshteinRatio(a, b) + jaccardWeight*tokenJaccard(source, target)
	if score < 0 {
		return 0
	}
	return score
}

func levenshteinRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	m := len(ra)
	if len(rb) > m {
		m = len(rb)
	}
	if m == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(m)
}

// classic full-matrix edit distance; catalog names are short, no need for a
// banded or linear-space variant
func levenshtein(a, b []rune) int {
	al, bl := len(a), len(b)
	dp := make([][]int, al+1)
	for i := 0; i <= al; i++ {
		dp[i] = make([]int, bl+1)
		dp[i][0] = i
	}
	for j := 0; j <= bl; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			dp[i][j] = minInt(dp[i-1][j]+1, minInt(dp[i][j-1]+1, dp[i-1][j-1]+cost))
		}
	}
	return dp[al][bl]
}

// tokenJaccard rewards multi-word partial overlap that whole-string edit
// distance under-counts. Tokens come from the raw strings, split on
// whitespace/punctuation, confusable-folded like normalizeName.
func tokenJaccard(a, b string) float64 {
	sa := tokenSet(a)
	sb := tokenSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[foldConfusables(f)] = struct{}{}
	}
	return set
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
