package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var rxHeaderNoise = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey flattens a column header for comparison: lowercase, NBSP
// variants to spaces, punctuation out, spaces collapsed.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", " ", " ", " ").Replace(s)
	s = rxHeaderNoise.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the real column key in a parsed record for a wanted name.
// want supports "|"-separated alternatives ("Product Name|الصنف"). Exact hits
// win, then normalized hits, then the longest containment either way.
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}

	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	normAlts := make([]string, 0, len(alts))
	for _, a := range alts {
		normAlts = append(normAlts, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range normAlts {
			if nk == n {
				return k
			}
		}
		// partial hit: want inside key or key inside want; composite headers
		// like "product name (english)" should still resolve
		score := 0
		for _, n := range normAlts {
			if n != "" && (strings.Contains(nk, n) || strings.Contains(n, nk)) && len(n) > score {
				score = len(n)
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

// reqLogger binds the request id set by the middleware, if any.
func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
