package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/ha-assist/internal/domain"
)

func TestValidate(t *testing.T) {
	valid := domain.Config{URL: "http://homeassistant.local:8123", Token: "abc"}

	cases := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr bool
	}{
		{"valid", func(*domain.Config) {}, false},
		{"https", func(c *domain.Config) { c.URL = "https://ha.example.net" }, false},
		{"missing url", func(c *domain.Config) { c.URL = "" }, true},
		{"relative url", func(c *domain.Config) { c.URL = "/api" }, true},
		{"bad scheme", func(c *domain.Config) { c.URL = "ftp://ha.local" }, true},
		{"missing token", func(c *domain.Config) { c.Token = "  " }, true},
		{"blank prefix", func(c *domain.Config) { c.Prefix = "   " }, true},
		{"negative timeout", func(c *domain.Config) { c.Timeout = -time.Second }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
