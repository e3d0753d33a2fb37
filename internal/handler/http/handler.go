package http

import (
	"github.com/MKhiriev/go-todo-server/internal/config"
	"github.com/MKhiriev/go-todo-server/internal/logger"
	"github.com/MKhiriev/go-todo-server/internal/service"
)

type Handler struct {
	services *service.Services

	publicDir    string
	maxBodyBytes int64
	corsOrigins  []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("public_dir", cfg.PublicDir).Msg("http handler created")
	return &Handler{
		services:     services,
		publicDir:    cfg.PublicDir,
		maxBodyBytes: cfg.MaxBodyBytes,
		corsOrigins:  cfg.CORSOrigins,
		logger:       logger,
	}
}
