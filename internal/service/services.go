package service

import (
	"github.com/dpanagushin/framestore/internal/config"
	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/objstore"
	"github.com/dpanagushin/framestore/internal/store"
)

type Services struct {
	AuthService  AuthService
	FrameService FrameService
}

func NewServices(storages *store.Storages, objectStore objstore.Client, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, storages.TokenRepository, cfg.App, logger)

	return &Services{
		AuthService:  authService,
		FrameService: NewFrameService(authService, storages.FrameRepository, objectStore, logger),
	}
}
