package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"storage-provider/core/logger"
	"storage-provider/core/server"
	"storage-provider/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional config file (storage-provider.yaml,
// .json or .toml) looked up next to the .env file.
const FileName = "storage-provider"

// Config holds all configuration for the application.
type Config struct {
	Server  server.Config  `mapstructure:"server"`
	Storage storage.Config `mapstructure:"storage"`
	Log     logger.Config  `mapstructure:"log"`
}

// LoadConfig resolves configuration from dir. Precedence, highest first:
// process environment, dir/.env, dir/storage-provider.{yaml,json,toml},
// struct tag defaults.
func LoadConfig(dir string) (*Config, error) {
	// Load never overrides variables that are already set.
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()
	registerDefaults(v, reflect.TypeFor[Config](), "")

	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// storage.bucket <- STORAGE_BUCKET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the parts a server needs before it starts listening.
func (c *Config) Validate() error {
	var errs []error
	if !c.Server.IsValidPort() {
		errs = append(errs, fmt.Errorf("invalid server port %q", c.Server.Port))
	}
	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// registerDefaults walks t and sets every leaf key to its `default` tag.
// Empty defaults are registered too: AutomaticEnv only resolves known keys.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := range t.NumField() {
		field := t.Field(i)
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
