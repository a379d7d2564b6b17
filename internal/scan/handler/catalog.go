package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"invoice-scan-service/internal/config"
	"invoice-scan-service/internal/fileio"
)

// column hints tried when the form does not name the product column;
// covers English and Arabic catalog exports
const defaultNameColumn = "Product Name|Name|Item|Product|اسم المنتج|الصنف|المنتج"

type catalogNamesResponse struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// CatalogNames handles POST /catalog/names: a multipart catalog export
// (.xlsx/.xls/.csv) in, the distinct product names out. The UI feeds those
// back as candidateProducts on /scan/normalize.
func CatalogNames(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		rows, err := fileio.ReadAnyMaps(file, header.Filename, headerRow)
		if err != nil {
			http.Error(w, "failed to read catalog: "+err.Error(), http.StatusBadRequest)
			return
		}

		nameHint := r.FormValue("name")
		if nameHint == "" {
			nameHint = defaultNameColumn
		}

		names := collectNames(rows, nameHint, cfg.MaxCandidates)
		writeJSON(w, log, catalogNamesResponse{Names: names, Count: len(names)})

		log.Info().
			Str("file", header.Filename).
			Int("rows", len(rows)).
			Int("names", len(names)).
			Dur("elapsed", time.Since(start)).
			Msg("catalog names extracted")
	}
}

// collectNames pulls distinct, non-empty product names out of the parsed rows
// in sheet order, stopping at limit.
func collectNames(rows []map[string]string, nameHint string, limit int) []string {
	names := make([]string, 0, len(rows))
	if len(rows) == 0 {
		return names
	}

	key := resolveKey(rows[0], nameHint)
	if key == "" {
		return names
	}

	seen := make(map[string]struct{}, len(rows))
	for _, rec := range rows {
		name := strings.TrimSpace(rec[key])
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
		if limit > 0 && len(names) >= limit {
			break
		}
	}
	return names
}
