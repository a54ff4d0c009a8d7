package domain

import "time"

// Config mirrors <config-dir>/ha-assist.yaml.
type Config struct {
	// Prefix is the activation prefix stripped from launcher input.
	Prefix string `yaml:"prefix"`
	// Language is the tag sent with every conversation request.
	Language string `yaml:"ha_language"`
	// URL is the Home Assistant base address. Only scheme and host are used.
	URL string `yaml:"ha_url"`
	// Token is the long-lived access token sent as a bearer credential.
	Token string `yaml:"ha_token"`
	// Timeout bounds a single conversation round trip.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// HistoryPath overrides the default history database location.
	HistoryPath string `yaml:"history_path,omitempty"`
}

// PrefixOrDefault returns the configured prefix, falling back to DefaultPrefix.
func (c Config) PrefixOrDefault() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}

// LanguageOrDefault returns the configured language tag, falling back to DefaultLanguage.
func (c Config) LanguageOrDefault() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}
