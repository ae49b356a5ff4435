// Package config loads and validates the client configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (BLOCKSTOR_*)
//  2. Configuration file (YAML or TOML)
//  3. Default values
package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config represents the BlockStor client configuration.
type Config struct {
	// Controller is the controller URI, e.g. plain-controller://10.0.0.1
	// or tls-controller://ctrl.example.com:3377.
	Controller string `mapstructure:"controller" validate:"required"`

	// Timeout bounds connect and handshake.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`

	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging"`

	// TLS configures the tls-controller scheme.
	TLS TLSConfig `mapstructure:"tls"`
}

// LoggingConfig controls the client's log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	Output string `mapstructure:"output"`
}

// TLSConfig holds certificate material for TLS connections. All paths are
// optional: without a CA file the system roots are used, and a client
// certificate is only needed when the controller requires one.
type TLSConfig struct {
	// CAFile is a PEM bundle of CA certificates to trust.
	CAFile string `mapstructure:"ca_file" validate:"omitempty,file"`

	// CertFile and KeyFile form the client certificate pair; both must be
	// set together.
	CertFile string `mapstructure:"cert_file" validate:"omitempty,file,required_with=KeyFile"`
	KeyFile  string `mapstructure:"key_file" validate:"omitempty,file,required_with=CertFile"`

	// InsecureSkipVerify disables server certificate verification. Only
	// for test setups.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
}

// Default returns the configuration defaults. The controller URI has no
// default; it must come from the file or the environment.
func Default() *Config {
	return &Config{
		Timeout: 20 * time.Second,
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads the configuration from the given file path, applying
// environment overrides and defaults. An empty path skips the file and
// uses environment variables and defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	// Every key gets a default so AutomaticEnv can override it on Unmarshal;
	// viper only consults the environment for keys it already knows.
	v.SetDefault("controller", defaults.Controller)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output", defaults.Logging.Output)
	v.SetDefault("tls.ca_file", defaults.TLS.CAFile)
	v.SetDefault("tls.cert_file", defaults.TLS.CertFile)
	v.SetDefault("tls.key_file", defaults.TLS.KeyFile)
	v.SetDefault("tls.insecure_skip_verify", defaults.TLS.InsecureSkipVerify)

	v.SetEnvPrefix("BLOCKSTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// BuildTLSConfig materializes the TLS settings into a tls.Config, loading
// certificate files from disk. Returns nil when nothing TLS-specific is
// configured, which makes the client fall back to its defaults.
func (c *Config) BuildTLSConfig() (*tls.Config, error) {
	t := c.TLS
	if t.CAFile == "" && t.CertFile == "" && !t.InsecureSkipVerify {
		return nil, nil
	}

	tlsCfg := &tls.Config{
		InsecureSkipVerify: t.InsecureSkipVerify,
	}

	if t.CAFile != "" {
		pem, err := os.ReadFile(t.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read ca file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ca file %q contains no usable certificates", t.CAFile)
		}
		tlsCfg.RootCAs = pool
	}

	if t.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
		tlsCfg.Certificates = []tls.Certificate{cert}
	}

	return tlsCfg, nil
}
