package config

import "errors"

var (
	ErrUnknownPreset = errors.New("unknown difficulty preset")
	ErrInvalidConfig = errors.New("invalid config")
)
