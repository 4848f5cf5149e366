package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	backupdomain "triplog/internal/domain/backup"
)

func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Backup.Export(r.Context())
	if err != nil {
		h.log.InternalError("backup.export: snapshot failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	filename := fmt.Sprintf("triplog-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) Import(w http.ResponseWriter, r *http.Request) {
	var doc backupdomain.Document
	if err := decodeJSON(r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Backup.Import(r.Context(), &doc)
	if err != nil {
		if errors.Is(err, backupdomain.ErrInvalidDocument) {
			h.log.BusinessError("backup.import: rejected", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("backup.import: restore failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.log.Info("backup: import complete",
		"import_id", result.ImportID, "trips", result.Trips, "photos", result.Photos)
	writeJSON(w, http.StatusOK, result)
}
