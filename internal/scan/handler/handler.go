package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"invoice-scan-service/internal/config"
	"invoice-scan-service/internal/scan/model"
	scanSvc "invoice-scan-service/internal/scan/service"
)

// Normalize handles POST /scan/normalize: the OCR proxy's loose JSON guess in,
// a catalog-reconciled ScanResult out. The core never fails on noisy input,
// so the only 400 here is an undecodable body.
func Normalize(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		defer r.Body.Close()
		var req model.ScanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		if n := cfg.MaxCandidates; n > 0 && len(req.CandidateProducts) > n {
			log.Warn().
				Int("candidates", len(req.CandidateProducts)).
				Int("cap", n).
				Msg("candidate list truncated")
			req.CandidateProducts = req.CandidateProducts[:n]
		}
		if req.Error != "" {
			// the model complained but may still have returned usable lines
			log.Warn().Str("ocr_error", req.Error).Msg("ocr reported an error")
		}

		res := scanSvc.ScanInvoice(req)
		writeJSON(w, log, res)

		log.Info().
			Int("items_in", len(req.Items)).
			Int("items_out", len(res.Items)).
			Bool("date_resolved", res.SaleDate != "").
			Dur("elapsed", time.Since(start)).
			Msg("scan done")
	}
}
