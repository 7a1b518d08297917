package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration key errors.
	ErrInvalidKey = errors.New("invalid configuration key")
)
