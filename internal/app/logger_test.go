//go:build !integration

package app

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel zerolog.Level
		wantMode  string
	}{
		{name: "empty level", wantLevel: zerolog.InfoLevel, wantMode: gin.ReleaseMode},
		{name: "debug", cfg: config.LogConfig{Level: "debug"}, wantLevel: zerolog.DebugLevel, wantMode: gin.DebugMode},
		{name: "trace", cfg: config.LogConfig{Level: "TRACE"}, wantLevel: zerolog.TraceLevel, wantMode: gin.DebugMode},
		{name: "pretty warn", cfg: config.LogConfig{Level: "warn", Pretty: true}, wantLevel: zerolog.WarnLevel, wantMode: gin.ReleaseMode},
		{name: "unknown level", cfg: config.LogConfig{Level: "chatty"}, wantLevel: zerolog.InfoLevel, wantMode: gin.ReleaseMode},
	}

	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.TestMode)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitializeLogger(tt.cfg)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.Equal(t, tt.wantMode, gin.Mode())
		})
	}
}
