package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/mapping"
	"gorm.io/mapping/logger"
)

// Config mapping configuration file, mapping.yaml
type Config struct {
	Naming NamingConfig `mapstructure:"naming"`
	Log    LogConfig    `mapstructure:"log"`
}

// NamingConfig naming strategy settings
type NamingConfig struct {
	// Strategy default or underscore
	Strategy    string `mapstructure:"strategy"`
	TablePrefix string `mapstructure:"table_prefix"`
	PluralTable bool   `mapstructure:"plural_table"`
}

// LogConfig logger settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	// Backend default, zap, logrus, zerolog or slog
	Backend  string `mapstructure:"backend"`
	Colorful bool   `mapstructure:"colorful"`
}

// ErrUnknownOption unknown naming strategy or log backend
var ErrUnknownOption = errors.New("unknown config option")

// Load reads path, or mapping.yaml from the working directory when path is
// empty; MAPPING_ prefixed environment variables override the file
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("naming.strategy", "default")
	v.SetDefault("naming.table_prefix", "")
	v.SetDefault("naming.plural_table", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.backend", "default")
	v.SetDefault("log.colorful", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mapping")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MAPPING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Namer naming strategy described by the config
func (c *Config) Namer() (mapping.Namer, error) {
	switch strings.ToLower(c.Naming.Strategy) {
	case "", "default":
		return mapping.DefaultNamingStrategy{}, nil
	case "underscore":
		return mapping.UnderscoreNamingStrategy{
			TablePrefix: c.Naming.TablePrefix,
			PluralTable: c.Naming.PluralTable,
		}, nil
	}
	return nil, fmt.Errorf("%w: naming strategy %q", ErrUnknownOption, c.Naming.Strategy)
}

// Logger logger described by the config
func (c *Config) Logger() (logger.Interface, error) {
	loggerConfig := logger.Config{
		LogLevel: logger.ParseLevel(c.Log.Level),
		Colorful: c.Log.Colorful,
	}

	switch strings.ToLower(c.Log.Backend) {
	case "", "default":
		return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), loggerConfig), nil
	case "zap":
		return logger.NewZapLoggerWithConfig(loggerConfig), nil
	case "logrus":
		l := logrus.New()
		l.SetLevel(logger.LogrusLevel(loggerConfig.LogLevel))
		return logger.NewLogrusLogger(l, loggerConfig), nil
	case "zerolog":
		return logger.NewZerologLoggerWithConfig(loggerConfig), nil
	case "slog":
		return logger.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)), loggerConfig), nil
	}
	return nil, fmt.Errorf("%w: log backend %q", ErrUnknownOption, c.Log.Backend)
}

// Options the mapping options described by the config
func (c *Config) Options() ([]mapping.ConfigOption, error) {
	namer, err := c.Namer()
	if err != nil {
		return nil, err
	}

	l, err := c.Logger()
	if err != nil {
		return nil, err
	}

	return []mapping.ConfigOption{
		mapping.WithNamingStrategy(namer),
		mapping.WithLogger(l),
	}, nil
}

func (c *Config) validate() error {
	if _, err := c.Namer(); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Backend) {
	case "", "default", "zap", "logrus", "zerolog", "slog":
		return nil
	}
	return fmt.Errorf("%w: log backend %q", ErrUnknownOption, c.Log.Backend)
}
