// Package config loads server settings from defaults, an optional YAML file
// and IRONFILES_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. IRONFILES_SERVER_ADDR.
const EnvPrefix = "IRONFILES"

// DefaultMinioEndpoint is used when no endpoint is configured.
const DefaultMinioEndpoint = "play.min.io:9000"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Minio   MinioConfig   `mapstructure:"minio"`
	Listing ListingConfig `mapstructure:"listing"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type MinioConfig struct {
	Endpoint     string `mapstructure:"endpoint" validate:"required"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	SessionToken string `mapstructure:"session_token"`
}

type ListingConfig struct {
	PageSize int `mapstructure:"page_size" validate:"min=1,max=1000"`
}

type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Encoding    string `mapstructure:"encoding" validate:"oneof=json console"`
	Development bool   `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("minio.endpoint", DefaultMinioEndpoint)
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.session_token", "")
	v.SetDefault("listing.page_size", 100)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("log.development", false)
}

// Load reads configuration. path may be empty, in which case IRONFILES_CONFIG
// is consulted and, failing that, only defaults and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// MINIO_ENDPOINT predates the prefixed variables.
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" && os.Getenv(EnvPrefix+"_MINIO_ENDPOINT") == "" {
		v.SetDefault("minio.endpoint", endpoint)
	}

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
