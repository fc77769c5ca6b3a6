package http

import (
	"github.com/MKhiriev/go-phonebook/internal/config"
	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
)

type Handler struct {
	services *service.Services

	version        string
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		version:        cfg.App.Version,
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
