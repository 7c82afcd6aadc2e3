package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "Folder Content Lister", cfg.Title)
	assert.True(t, cfg.FixedSize)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "empty title", modify: func(c *Config) { c.Title = "" }},
		{name: "zero width", modify: func(c *Config) { c.WindowWidth = 0 }},
		{name: "negative height", modify: func(c *Config) { c.WindowHeight = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
