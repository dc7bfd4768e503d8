package http

import (
	"github.com/velikanov/codeshelf/internal/logger"
	"github.com/velikanov/codeshelf/internal/service"
	"github.com/velikanov/codeshelf/internal/utils"
)

type Handler struct {
	services *service.Services

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		uuid:     utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
