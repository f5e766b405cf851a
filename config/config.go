package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMongo   = "mongo"
	BackendElastic = "elastic"
	BackendMemory  = "memory"
)

const (
	defaultPort              = "3000"
	defaultBackend           = BackendMongo
	defaultMongoDatabase     = "tienda"
	defaultMongoCollection   = "libros"
	defaultElasticIndex      = "libros"
	defaultActivityMax       = 3
	defaultLogLevel          = "info"
	defaultGinMode           = "release"
	defaultShutdownTimeoutMS = 3000
	dotEnvFile               = ".env"
)

var (
	ErrUnknownBackend    = errors.New("unknown library backend")
	ErrMissingMongoURI   = errors.New("MONGODB_URI is required for the mongo backend")
	ErrMissingElasticURL = errors.New("ELASTIC_URL is required for the elastic backend")
)

type (
	Config struct {
		HTTP struct {
			Port            string        `env:"PORT"`
			GinMode         string        `env:"GIN_MODE"`
			ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT_MS"`
		}

		Library struct {
			Backend string `env:"LIBRARY_BACKEND"`
		}

		Mongo struct {
			URI        string `env:"MONGODB_URI"`
			Database   string `env:"MONGODB_DATABASE"`
			Collection string `env:"MONGODB_COLLECTION"`
		}

		Elastic struct {
			URL   string `env:"ELASTIC_URL"`
			Index string `env:"ELASTIC_INDEX"`
		}

		Activity struct {
			RedisURL  string `env:"REDIS_URL"`
			MaxNumber int    `env:"ACTIVITY_MAX"`
		}

		Log struct {
			Level string `env:"LOG_LEVEL"`
		}
	}
)

// NewConfig reads the process environment. Values found in a .env file in
// the working directory are used when the variable is not set.
func NewConfig() (*Config, error) {
	v := viper.New()

	if err := readDotEnv(v, dotEnvFile); err != nil {
		return nil, err
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	var err error

	if cfg.HTTP.Port, err = parseEnvString(v, "port", "PORT", defaultPort); err != nil {
		return nil, err
	}

	if cfg.HTTP.GinMode, err = parseEnvString(v, "gin_mode", "GIN_MODE", defaultGinMode); err != nil {
		return nil, err
	}

	var shutdownMS int
	if shutdownMS, err = parseEnvInt(v, "shutdown_timeout_ms", "SHUTDOWN_TIMEOUT_MS", defaultShutdownTimeoutMS); err != nil {
		return nil, err
	}
	cfg.HTTP.ShutdownTimeout = time.Duration(shutdownMS) * time.Millisecond

	if cfg.Library.Backend, err = parseEnvString(v, "library_backend", "LIBRARY_BACKEND", defaultBackend); err != nil {
		return nil, err
	}

	if cfg.Mongo.URI, err = parseEnvString(v, "mongodb_uri", "MONGODB_URI"); err != nil {
		return nil, err
	}

	if cfg.Mongo.Database, err = parseEnvString(v, "mongodb_database", "MONGODB_DATABASE", defaultMongoDatabase); err != nil {
		return nil, err
	}

	if cfg.Mongo.Collection, err = parseEnvString(v, "mongodb_collection", "MONGODB_COLLECTION", defaultMongoCollection); err != nil {
		return nil, err
	}

	if cfg.Elastic.URL, err = parseEnvString(v, "elastic_url", "ELASTIC_URL"); err != nil {
		return nil, err
	}

	if cfg.Elastic.Index, err = parseEnvString(v, "elastic_index", "ELASTIC_INDEX", defaultElasticIndex); err != nil {
		return nil, err
	}

	if cfg.Activity.RedisURL, err = parseEnvString(v, "redis_url", "REDIS_URL"); err != nil {
		return nil, err
	}

	if cfg.Activity.MaxNumber, err = parseEnvInt(v, "activity_max", "ACTIVITY_MAX", defaultActivityMax); err != nil {
		return nil, err
	}

	if cfg.Log.Level, err = parseEnvString(v, "log_level", "LOG_LEVEL", defaultLogLevel); err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Library.Backend {
	case BackendMongo:
		if cfg.Mongo.URI == "" {
			return ErrMissingMongoURI
		}
	case BackendElastic:
		if cfg.Elastic.URL == "" {
			return ErrMissingElasticURL
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Library.Backend)
	}

	if cfg.Activity.MaxNumber <= 0 {
		return fmt.Errorf("ACTIVITY_MAX must be positive, got %d", cfg.Activity.MaxNumber)
	}

	return nil
}

// ActivityEnabled reports whether the request journal should be wired.
func (cfg *Config) ActivityEnabled() bool {
	return cfg.Activity.RedisURL != ""
}

func readDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("can not read %s: %w", path, err)
	}

	return nil
}

func parseEnvInt(v *viper.Viper, key, envVar string, defaultValue ...int) (int, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return 0, err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetInt(key), nil
}

func parseEnvString(v *viper.Viper, key, envVar string, defaultValue ...string) (string, error) {
	err := v.BindEnv(key, envVar)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue[0], err
		}
		return "", err
	}
	if len(defaultValue) > 0 {
		v.SetDefault(key, defaultValue[0])
	}
	return v.GetString(key), nil
}
