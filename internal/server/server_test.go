package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpanagushin/framestore/internal/config"
	"github.com/dpanagushin/framestore/internal/handler"
	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/internal/service"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:0", RequestTimeout: time.Second}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv := newHTTPServer(handlers.HTTP.Init(), cfg, logger.Nop())

	assert.Equal(t, cfg.HTTPAddress, srv.server.Addr)
	assert.Equal(t, cfg.RequestTimeout, srv.server.ReadTimeout)
	assert.Equal(t, cfg.RequestTimeout, srv.server.WriteTimeout)
}
