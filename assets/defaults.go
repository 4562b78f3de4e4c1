package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultPracticesYAML contains the embedded default best-practice rules.
//
//go:embed defaults/practices.yaml
var DefaultPracticesYAML []byte
