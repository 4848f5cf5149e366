package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	tripsdomain "triplog/internal/domain/trips"
)

// tripRequest mirrors the export format for a single trip so a
// previously exported record can be sent back as-is. id, createdAt and
// updatedAt are accepted and ignored; the store owns those fields.
type tripRequest struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Place      string    `json:"place"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Notes      string    `json:"notes"`
	Tags       []string  `json:"tags"`
	Favorite   bool      `json:"favorite"`
	Lat        *float64  `json:"lat"`
	Lng        *float64  `json:"lng"`
	CoverPhoto string    `json:"coverPhoto"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (req tripRequest) toInput() tripsdomain.TripInput {
	return tripsdomain.TripInput{
		Title:      req.Title,
		Country:    req.Country,
		City:       req.City,
		Place:      req.Place,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Notes:      req.Notes,
		Tags:       req.Tags,
		Favorite:   req.Favorite,
		Lat:        req.Lat,
		Lng:        req.Lng,
		CoverPhoto: req.CoverPhoto,
	}
}

type tripListResponse struct {
	Items []tripsdomain.Trip `json:"items"`
	Total int                `json:"total"`
}

func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	favorites, err := parseBoolParam(query.Get("favorites"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid favorites flag")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	var items []tripsdomain.Trip
	search := strings.TrimSpace(query.Get("q"))
	switch {
	case search != "":
		items, err = h.Trips.Search(r.Context(), search)
	case favorites:
		items, err = h.Trips.Favorites(r.Context())
	case limit > 0:
		items, err = h.Trips.Recent(r.Context(), limit)
	default:
		items, err = h.Trips.List(r.Context())
	}
	if err != nil {
		h.log.InternalError("trips.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tripListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Trips.Add(r.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, tripsdomain.ErrValidation) {
			h.log.BusinessError("trips.create: rejected", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("trips.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	trip, err := h.Trips.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, tripsdomain.ErrTripNotFound) {
			writeError(w, http.StatusNotFound, "trip_not_found", "trip not found")
			return
		}
		h.log.InternalError("trips.get: lookup failed", err, "trip_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

func (h *Handlers) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Trips.Update(r.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, tripsdomain.ErrValidation):
			h.log.BusinessError("trips.update: rejected", err, "trip_id", id)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, tripsdomain.ErrTripNotFound):
			h.log.BusinessError("trips.update: trip not found", err, "trip_id", id)
			writeError(w, http.StatusNotFound, "trip_not_found", "trip not found")
		default:
			h.log.InternalError("trips.update: update failed", err, "trip_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, tripsdomain.ErrTripNotFound) {
			h.log.BusinessError("trips.delete: trip not found", err, "trip_id", id)
			writeError(w, http.StatusNotFound, "trip_not_found", "trip not found")
			return
		}
		h.log.InternalError("trips.delete: cascade failed", err, "trip_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
