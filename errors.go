package additive

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every error that rejects a voice before rendering.
var ErrConfig = errors.New("invalid voice configuration")

// ConfigError describes one rejected field of a voice.
type ConfigError struct {
	Field  string // JSON path, e.g. "sineWaves[2].ratio"
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }
