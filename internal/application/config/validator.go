package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/ha-assist/internal/domain"
)

// Validate ensures config structure is consistent. Every error wraps
// domain.ErrInvalidConfig.
func Validate(cfg domain.Config) error {
	if err := validateURL(cfg.URL); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return invalid("ha_token must be set (or export HA_ASSIST_TOKEN)")
	}
	if strings.TrimSpace(cfg.PrefixOrDefault()) == "" {
		return invalid("prefix must contain a non-space character")
	}
	if cfg.Timeout < 0 {
		return invalid("timeout must be >= 0, got %s", cfg.Timeout)
	}
	return nil
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return invalid("ha_url must be set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return invalid("ha_url invalid: %v", err)
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return invalid("ha_url must use http or https, got %q", raw)
	}
	if u.Host == "" {
		return invalid("ha_url must include a host, got %q", raw)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
