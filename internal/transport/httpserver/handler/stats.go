package handler

import "net/http"

func (h *Handlers) StatsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Stats.Overview(r.Context())
	if err != nil {
		h.log.InternalError("stats.overview: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *Handlers) StatsCountries(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.Stats.Countries(r.Context())
	if err != nil {
		h.log.InternalError("stats.countries: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, ranked)
}

func (h *Handlers) StatsTags(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.Stats.Tags(r.Context())
	if err != nil {
		h.log.InternalError("stats.tags: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, ranked)
}
