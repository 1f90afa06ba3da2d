package mapping

import (
	"gorm.io/mapping/logger"
)

// Config metadata config
type Config struct {
	// NamingStrategy derives table, column and join table names that were not given explicitly
	NamingStrategy Namer
	// Logger
	Logger logger.Interface
}

// ConfigOption use functional option for Config.
type ConfigOption func(c *Config)

// WithNamingStrategy set naming strategy.
func WithNamingStrategy(namer Namer) ConfigOption {
	return func(c *Config) {
		c.NamingStrategy = namer
	}
}

// WithLogger set logger.
func WithLogger(logger logger.Interface) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithLogLevel set the log level of the configured logger.
func WithLogLevel(level logger.LogLevel) ConfigOption {
	return func(c *Config) {
		if c.Logger == nil {
			c.Logger = logger.Default
		}
		c.Logger = c.Logger.LogMode(level)
	}
}

// NewConfig returns a config with the given options applied over the defaults
func NewConfig(opts ...ConfigOption) *Config {
	config := &Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(config)
		}
	}

	if config.NamingStrategy == nil {
		config.NamingStrategy = DefaultNamingStrategy{}
	}

	if config.Logger == nil {
		config.Logger = logger.Default
	}
	return config
}
