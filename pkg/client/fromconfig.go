package client

import (
	"github.com/marmos91/blockstor/internal/logger"
	"github.com/marmos91/blockstor/pkg/config"
)

// FromConfig builds a client from a loaded configuration, applying its
// logging settings and TLS material. Extra options override the
// configuration.
func FromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return nil, &ConfigError{Message: err.Error()}
	}

	tlsCfg, err := cfg.BuildTLSConfig()
	if err != nil {
		return nil, &ConfigError{Message: err.Error()}
	}

	base := []Option{WithTimeout(cfg.Timeout)}
	if tlsCfg != nil {
		base = append(base, WithTLSConfig(tlsCfg))
	}
	return New(cfg.Controller, append(base, opts...)...), nil
}
