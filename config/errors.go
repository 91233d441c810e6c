package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aerovlm"
)

var (
	// ErrMissingKey indicates a required key is absent.
	ErrMissingKey = fmt.Errorf("config: missing required key: %w", aerovlm.ErrConfiguration)

	// ErrBadValue indicates a key whose value does not parse.
	ErrBadValue = fmt.Errorf("config: invalid value: %w", aerovlm.ErrConfiguration)
)

var errEmptyList = errors.New("empty list")
