package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/hwprofile/internal/errors"
	"github.com/thoreinstein/hwprofile/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "HWPROFILE"

// DefaultSensorInterval is the polling interval used when none is configured.
const DefaultSensorInterval = 100 * time.Millisecond

// Config represents the top-level configuration structure.
type Config struct {
	Version          int           `mapstructure:"version" yaml:"version"`
	Profile          string        `mapstructure:"profile" yaml:"profile,omitempty"`
	HardwareOverride string        `mapstructure:"hardware_override" yaml:"hardware_override,omitempty"`
	SensorInterval   time.Duration `mapstructure:"sensor_interval" yaml:"sensor_interval"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:        1,
		SensorInterval: DefaultSensorInterval,
	}
}

// newViper returns a Viper instance with defaults, search paths and
// environment binding applied.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(paths.ConfigDir())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("profile", d.Profile)
	v.SetDefault("hardware_override", d.HardwareOverride)
	v.SetDefault("sensor_interval", d.SensorInterval)

	return v
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error wrapping ErrNotFound. If path is empty, the default locations
// are searched and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
			v.SetConfigType(ext)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound), isNotExist(err):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
