package ringbuffer

import (
	"gopkg.in/yaml.v3"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/metric"
)

// Config declares a buffer for construction from configuration files.
type Config struct {
	// Name identifies the buffer in metrics labels and summaries.
	Name string `yaml:"name" json:"name"`

	// Capacity is the number of slots in the backing block. Required.
	Capacity int `yaml:"capacity" json:"capacity"`

	// MetricsPrefix enables Prometheus export under this component label
	// when a registry is supplied. Optional.
	MetricsPrefix string `yaml:"metrics_prefix" json:"metrics_prefix"`
}

// ParseConfig decodes a YAML buffer declaration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.WrapInvalid(err, "Config", "ParseConfig", "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the declaration for construction readiness.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.WrapInvalid(errors.ErrInvalidCapacity,
			"Config", "Validate", "capacity must be positive")
	}
	return nil
}

// FromConfig constructs a buffer from a validated declaration. The registry
// may be nil when MetricsPrefix is unset. Additional options are applied
// after the declaration and may override it.
func FromConfig[T any](cfg Config, registry *metric.MetricsRegistry, options ...Option[T]) (*RingBuffer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MetricsPrefix != "" && registry == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig,
			"Config", "FromConfig", "metrics prefix set without a registry")
	}

	applied := []Option[T]{WithName[T](cfg.Name)}
	if cfg.MetricsPrefix != "" {
		applied = append(applied, WithMetrics[T](registry, cfg.MetricsPrefix))
	}
	applied = append(applied, options...)

	return New[T](cfg.Capacity, applied...)
}
