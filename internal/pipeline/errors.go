package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptySource marks an input file that exists but holds no data.
var ErrEmptySource = errors.New("input file is empty")

// ConfigError is fatal for its source: the input could not be opened or
// the run configuration is unusable. It is always surfaced before any
// record from that source is processed.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("source %s: %v", e.Source, e.Err)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
