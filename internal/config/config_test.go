package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Transport != "stdio" {
		t.Errorf("transport = %q, want stdio", cfg.Server.Transport)
	}
	if cfg.Catalog.CacheBackend != "file" {
		t.Errorf("cache backend = %q, want file", cfg.Catalog.CacheBackend)
	}
	if cfg.Session.TTL.Duration != 24*time.Hour {
		t.Errorf("ttl = %v, want 24h", cfg.Session.TTL.Duration)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Transport != "stdio" {
		t.Errorf("transport = %q, want default", cfg.Server.Transport)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
transport = "http"
addr = "0.0.0.0:9000"

[catalog]
index_url = "https://shapes.example.com/index.json"
cache_backend = "redis"

[session]
ttl = "30m"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Transport != "http" || cfg.Server.Addr != "0.0.0.0:9000" {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Catalog.IndexURL != "https://shapes.example.com/index.json" {
		t.Errorf("index url = %q", cfg.Catalog.IndexURL)
	}
	if cfg.Catalog.CacheBackend != "redis" {
		t.Errorf("cache backend = %q", cfg.Catalog.CacheBackend)
	}
	// Untouched sections keep their defaults.
	if cfg.Catalog.RedisAddr != "127.0.0.1:6379" {
		t.Errorf("redis addr = %q, want default", cfg.Catalog.RedisAddr)
	}
	if cfg.Session.TTL.Duration != 30*time.Minute {
		t.Errorf("ttl = %v, want 30m", cfg.Session.TTL.Duration)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad transport", "[server]\ntransport = \"carrier-pigeon\"\n"},
		{"bad backend", "[catalog]\ncache_backend = \"floppy\"\n"},
		{"bad ttl", "[session]\nttl = \"soon\"\n"},
		{"bad index url", "[catalog]\nindex_url = \"ftp://shapes.example.com\"\n"},
		{"malformed toml", "[server\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load accepted invalid config")
			}
		})
	}
}

func TestCacheDirOrDefault(t *testing.T) {
	c := Catalog{CacheDir: "/tmp/custom"}
	dir, err := c.CacheDirOrDefault()
	if err != nil || dir != "/tmp/custom" {
		t.Errorf("override ignored: %q, %v", dir, err)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err = Catalog{}.CacheDirOrDefault()
	if err != nil || dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("xdg dir = %q, %v", dir, err)
	}
}
