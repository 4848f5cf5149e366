package handler

import (
	"errors"
	"fmt"
	"net/http"

	photosdomain "triplog/internal/domain/photos"
)

type photoRequest struct {
	ID     int64  `json:"id"`
	TripID int64  `json:"tripId"`
	Data   string `json:"data"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

type photoListResponse struct {
	Items []photosdomain.Photo `json:"items"`
	Total int                  `json:"total"`
}

func (h *Handlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	items, err := h.Photos.List(r.Context())
	if err != nil {
		h.log.InternalError("photos.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, photoListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	created, err := h.Photos.Add(r.Context(), photosdomain.PhotoInput{
		TripID: req.TripID,
		Data:   req.Data,
		Name:   req.Name,
		Type:   req.Type,
	})
	if err != nil {
		if errors.Is(err, photosdomain.ErrValidation) {
			h.log.BusinessError("photos.create: rejected", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		h.log.InternalError("photos.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Photos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, photosdomain.ErrPhotoNotFound) {
			h.log.BusinessError("photos.delete: photo not found", err, "photo_id", id)
			writeError(w, http.StatusNotFound, "photo_not_found", "photo not found")
			return
		}
		h.log.InternalError("photos.delete: delete failed", err, "photo_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListTripPhotos(w http.ResponseWriter, r *http.Request) {
	tripID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	items, err := h.Photos.GetByTrip(r.Context(), tripID)
	if err != nil {
		h.log.InternalError("photos.list_by_trip: query failed", err, "trip_id", tripID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, photoListResponse{Items: items, Total: len(items)})
}

func (h *Handlers) DeleteTripPhotos(w http.ResponseWriter, r *http.Request) {
	tripID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	deleted, err := h.Photos.DeleteByTrip(r.Context(), tripID)
	if err != nil {
		h.log.InternalError("photos.delete_by_trip: stopped partway", err, "trip_id", tripID, "deleted", deleted)
		writeError(w, http.StatusInternalServerError, "partial_delete",
			fmt.Sprintf("removed %d photos before a storage failure", deleted))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
