package store

import (
	"github.com/dpanagushin/framestore/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository
	TokenRepository
	FrameRepository
}

// NewStorages wires all repositories onto one database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		TokenRepository: NewTokenRepository(db, logger),
		FrameRepository: NewFrameRepository(db, logger),
	}
}
