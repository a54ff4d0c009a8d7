package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration written by `ha-assist init`.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
