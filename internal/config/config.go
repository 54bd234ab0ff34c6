// Package config resolves settings from flags, BUCKET_* environment
// variables and an optional .bucket config file, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/remote"
)

// Backends understood by the backend factory.
const (
	BackendHTTP   = "http"
	BackendFile   = "file"
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Keys, shared with the cobra flags bound onto them.
const (
	KeyBackend    = "backend"
	KeyURL        = "url"
	KeyPath       = "path"
	KeyCategories = "categories"
	KeyTheme      = "theme"
	KeyTimeout    = "timeout"
	KeyServeAddr  = "serve.addr"
	KeyServeData  = "serve.data"
	KeyServeLog   = "serve.log"
)

type Config struct {
	Backend    string
	URL        string
	Path       string
	Categories []string
	Theme      string
	Timeout    time.Duration

	Serve Serve
}

// Serve configures the `serve` command.
type Serve struct {
	Addr    string
	Data    string
	LogFile string
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBackend, BackendHTTP)
	v.SetDefault(KeyURL, remote.DefaultURL)
	v.SetDefault(KeyPath, "")
	v.SetDefault(KeyCategories, category.DefaultLabels)
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyTimeout, 5*time.Second)
	v.SetDefault(KeyServeAddr, ":8000")
	v.SetDefault(KeyServeData, "data/bucket.json")
	v.SetDefault(KeyServeLog, "")
}

// Load reads the config file (if any) into v and returns the resolved
// settings. file, when set, names an explicit config file.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("BUCKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".bucket") // extension picked by viper
		if override := os.Getenv("BUCKET_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper resolves and validates the settings currently held by v.
func FromViper(v *viper.Viper) (Config, error) {
	c := Config{
		Backend:    strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		URL:        strings.TrimSpace(v.GetString(KeyURL)),
		Path:       strings.TrimSpace(v.GetString(KeyPath)),
		Categories: category.Normalize(labels(v)),
		Theme:      v.GetString(KeyTheme),
		Timeout:    v.GetDuration(KeyTimeout),
		Serve: Serve{
			Addr:    v.GetString(KeyServeAddr),
			Data:    v.GetString(KeyServeData),
			LogFile: v.GetString(KeyServeLog),
		},
	}
	switch c.Backend {
	case BackendHTTP, BackendFile, BackendDiskv, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("config: unknown backend %q (want http, file, diskv or sqlite)", c.Backend)
	}
	if c.Path == "" {
		c.Path = DefaultPath(c.Backend)
	}
	return c, nil
}

// labels accepts both a list and a comma-separated string (env vars).
func labels(v *viper.Viper) []string {
	if s, ok := v.Get(KeyCategories).(string); ok {
		return strings.Split(s, ",")
	}
	return v.GetStringSlice(KeyCategories)
}

// DefaultPath is where local backends keep their data.
func DefaultPath(backend string) string {
	switch backend {
	case BackendFile:
		return "bucket.json"
	case BackendDiskv:
		return "bucket.db"
	case BackendSQLite:
		return "bucket.sqlite"
	}
	return ""
}
