package server

import (
	"testing"
	"time"

	"github.com/dpetrovs/zkpauth/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	cfg := &config.Config{
		EndpointAddrGRPC: ":50051",
		SessionSecret:    "secret",
		ChallengeTTL:     2 * time.Minute,
		SessionTTL:       30 * time.Minute,
		SweepInterval:    30 * time.Second,
	}

	app, err := NewApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NotNil(t, app.logger)
	assert.NotNil(t, app.params)
	assert.NotNil(t, app.store)
	assert.NotNil(t, app.authService)
	assert.Equal(t, cfg, app.config)
}

func TestNewAppRejectsEmptySessionSecret(t *testing.T) {
	cfg := &config.Config{
		EndpointAddrGRPC: ":50051",
		SessionSecret:    "",
	}

	app, err := NewApp(cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), "session secret")
}
