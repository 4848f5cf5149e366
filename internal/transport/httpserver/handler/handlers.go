package handler

import (
	"net/http"

	"triplog/internal/auth"
	backupdomain "triplog/internal/domain/backup"
	photosdomain "triplog/internal/domain/photos"
	statsdomain "triplog/internal/domain/stats"
	tripsdomain "triplog/internal/domain/trips"
	"triplog/pkg/logger"
)

type Handlers struct {
	Trips  *tripsdomain.Service
	Photos *photosdomain.Service
	Stats  *statsdomain.Service
	Backup *backupdomain.Service
	Auth   *auth.Service

	log logger.Logger
}

func New(trips *tripsdomain.Service, photos *photosdomain.Service, stats *statsdomain.Service, backup *backupdomain.Service, authSvc *auth.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Trips:  trips,
		Photos: photos,
		Stats:  stats,
		Backup: backup,
		Auth:   authSvc,
		log:    log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
