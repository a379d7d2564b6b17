// Catalog reconciliation: snap OCR line items back onto known product names.
package service

import (
	"math"
	"strings"

	"invoice-scan-service/internal/scan/model"
)

// NormalizeItems cleans each OCR line independently: parse the numeric
// fields, derive a missing total from qty*price, snap the name to the best
// catalog candidate at or above MatchThreshold, and drop lines that still
// have no name or no positive quantity. Surviving lines keep input order.
func NormalizeItems(raw []model.RawItem, candidates []string) []model.NormalizedItem {
	out := make([]model.NormalizedItem, 0, len(raw))
	for _, r := range raw {
		qty := ParseFlexibleNumber(r.Quantity)
		price := ParseFlexibleNumber(r.UnitPrice)
		total := ParseFlexibleNumber(r.TotalAmount)
		if total == 0 && qty > 0 && price > 0 {
			total = round3(qty * price)
		}

		name := strings.TrimSpace(r.ProductName)
		if name != "" && len(candidates) > 0 {
			if best, score := BestCandidate(name, candidates); score >= MatchThreshold {
				name = best
			}
		}

		if name == "" || qty <= 0 {
			continue // unsalvageable; caller notices the shrunken count
		}
		out = append(out, model.NormalizedItem{
			ProductName: name,
			Quantity:    qty,
			UnitPrice:   price,
			TotalAmount: total,
		})
	}
	return out
}

// BestCandidate scores name against every candidate and returns the winner.
// Only a strictly better score displaces the current best, so ties resolve to
// the earliest candidate in list order.
func BestCandidate(name string, candidates []string) (string, float64) {
	best := ""
	bestScore := -1.0
	for _, c := range candidates {
		if s := ScoreNameSimilarity(name, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, bestScore
}

// ScanInvoice runs the whole cleaning pass over one OCR guess. Pure and
// deterministic; safe to call concurrently.
func ScanInvoice(req model.ScanRequest) model.ScanResult {
	return model.ScanResult{
		Items:    NormalizeItems(req.Items, req.CandidateProducts),
		SaleDate: NormalizeInvoiceDate(req.SaleDate),
		Error:    req.Error,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
