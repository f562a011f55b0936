package app

import (
	"testing"
	"time"

	"storynest_backend/internal/config"
	"storynest_backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestReloadConfigNotifiesCallbacks(t *testing.T) {
	a := &App{Config: &config.Config{}}

	var seen []*config.Config
	a.RegisterConfigCallback(func(cfg *config.Config) {
		seen = append(seen, cfg)
	})

	next := &config.Config{}
	a.ReloadConfig(next)

	assert.Same(t, next, a.Config)
	assert.Len(t, seen, 1)
	assert.Same(t, next, seen[0])
}

func TestReloadConfigSwapsAuthConfig(t *testing.T) {
	a := &App{Config: &config.Config{}}
	auth := service.NewAuthService(nil, a.Config)
	a.RegisterConfigCallback(func(next *config.Config) {
		auth.Cfg = next
	})

	rotated := &config.Config{
		JWT: config.JWTConfig{Secret: "rotated-secret", ExpireTime: time.Hour},
	}
	a.ReloadConfig(rotated)

	assert.Equal(t, "rotated-secret", auth.Cfg.JWT.Secret)
}
