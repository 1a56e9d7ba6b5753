// Package config loads the drawdeck configuration file.
//
// Configuration is TOML. Every field has a default, so a missing file is
// not an error; the server and CLI run fine with no configuration at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/drawdeck/drawdeck/pkg/errors"
)

const appName = "drawdeck"

// Config is the full configuration tree.
type Config struct {
	Server  Server  `toml:"server"`
	Catalog Catalog `toml:"catalog"`
	Session Session `toml:"session"`
	Log     Log     `toml:"log"`
}

// Server configures the MCP transport.
type Server struct {
	// Transport selects how the server speaks MCP: "stdio" or "http".
	Transport string `toml:"transport"`
	// Addr is the listen address for the http transport.
	Addr string `toml:"addr"`
}

// Catalog configures the shape catalog.
type Catalog struct {
	// IndexURL is an optional remote shape index. Empty means builtin
	// shapes only.
	IndexURL string `toml:"index_url"`
	// CacheBackend selects where fetched indexes are cached: "file",
	// "redis", or "none".
	CacheBackend string `toml:"cache_backend"`
	// CacheDir overrides the file cache location. Empty means the XDG
	// cache directory.
	CacheDir string `toml:"cache_dir"`
	// RedisAddr is the Redis address for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// Session configures session lifecycle.
type Session struct {
	// TTL is how long an idle session's document is kept.
	TTL duration `toml:"ttl"`
}

// Log configures logging.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// duration lets TTL be written as "30m" or "24h" in TOML.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{
			Transport: "stdio",
			Addr:      "127.0.0.1:8723",
		},
		Catalog: Catalog{
			CacheBackend: "file",
			RedisAddr:    "127.0.0.1:6379",
		},
		Session: Session{
			TTL: duration{24 * time.Hour},
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the configuration at path, layered over the defaults. An
// empty path means the default location; a missing file at either returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Server.Transport {
	case "stdio", "http":
	default:
		return fmt.Errorf("unknown transport %q", c.Server.Transport)
	}
	switch c.Catalog.CacheBackend {
	case "file", "redis", "none":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Catalog.CacheBackend)
	}
	if c.Catalog.IndexURL != "" {
		if err := errors.ValidateURL(c.Catalog.IndexURL); err != nil {
			return fmt.Errorf("catalog index_url: %w", err)
		}
	}
	return nil
}

// defaultPath is ~/.config/drawdeck/config.toml, honoring XDG_CONFIG_HOME.
func defaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDirOrDefault resolves the file cache directory, honoring the
// override and XDG_CACHE_HOME.
func (c Catalog) CacheDirOrDefault() (string, error) {
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
