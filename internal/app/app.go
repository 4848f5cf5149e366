package app

import (
	"net/http"

	"triplog/internal/auth"
	"triplog/internal/config"
	"triplog/internal/db"
	backupdomain "triplog/internal/domain/backup"
	photosdomain "triplog/internal/domain/photos"
	statsdomain "triplog/internal/domain/stats"
	tripsdomain "triplog/internal/domain/trips"
	backuprepo "triplog/internal/repository/backup"
	photosrepo "triplog/internal/repository/photos"
	statsrepo "triplog/internal/repository/stats"
	tripsrepo "triplog/internal/repository/trips"
	"triplog/internal/transport/httpserver"
	"triplog/internal/transport/httpserver/handler"
	"triplog/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log.Info("app: opening database", "driver", cfg.DB.Driver)
	conn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: preparing schema")
	if err := db.Prepare(conn); err != nil {
		return nil, err
	}

	tokens := auth.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	handlers := handler.New(
		tripsdomain.NewService(tripsrepo.NewGorm(conn)),
		photosdomain.NewService(photosrepo.NewGorm(conn)),
		statsdomain.NewService(statsrepo.NewGorm(conn)),
		backupdomain.NewService(backuprepo.NewGorm(conn)),
		auth.NewService(conn, tokens),
		log,
	)

	router := httpserver.NewRouter(cfg, handlers, tokens)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         conn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
