package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the configuration for the search service
type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Storage StorageConfig
}

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	Addr string
}

// ContentConfig holds the feed endpoints and refresh behaviour
type ContentConfig struct {
	PagesURL        string
	FaqURL          string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
}

// StorageConfig holds the content snapshot configuration
type StorageConfig struct {
	DataDir        string
	WatchSnapshots bool
}

// fileConfig mirrors Config for the optional TOML file. Durations are
// strings there ("30s", "5m") and parsed on load.
type fileConfig struct {
	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
	Content struct {
		PagesURL        string `toml:"pages_url"`
		FaqURL          string `toml:"faq_url"`
		RequestTimeout  string `toml:"request_timeout"`
		RefreshInterval string `toml:"refresh_interval"`
	} `toml:"content"`
	Storage struct {
		DataDir        string `toml:"data_dir"`
		WatchSnapshots *bool  `toml:"watch_snapshots"`
	} `toml:"storage"`
}

// Load builds the configuration from defaults, then the optional TOML
// file named by SITESEARCH_CONFIG, then environment variable overrides.
func Load() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Content: ContentConfig{
			PagesURL:        "https://www.telcoinwiki.com/data/search-index.json",
			FaqURL:          "https://www.telcoinwiki.com/data/faq.json",
			RequestTimeout:  10 * time.Second,
			RefreshInterval: 15 * time.Minute,
		},
		Storage: StorageConfig{
			DataDir:        "./data",
			WatchSnapshots: true,
		},
	}

	if path := os.Getenv("SITESEARCH_CONFIG"); path != "" {
		applyFile(cfg, path)
	}

	cfg.Server.Addr = GetStringEnv("SITESEARCH_ADDR", cfg.Server.Addr)
	cfg.Content.PagesURL = GetStringEnv("SITESEARCH_PAGES_URL", cfg.Content.PagesURL)
	cfg.Content.FaqURL = GetStringEnv("SITESEARCH_FAQ_URL", cfg.Content.FaqURL)
	cfg.Content.RequestTimeout = GetDurationEnv("SITESEARCH_REQUEST_TIMEOUT", cfg.Content.RequestTimeout)
	cfg.Content.RefreshInterval = GetDurationEnv("SITESEARCH_REFRESH_INTERVAL", cfg.Content.RefreshInterval)
	cfg.Storage.DataDir = GetStringEnv("SITESEARCH_DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.WatchSnapshots = GetBoolEnv("SITESEARCH_WATCH_SNAPSHOTS", cfg.Storage.WatchSnapshots)

	return cfg
}

// applyFile layers a TOML file over the defaults. An unreadable or
// malformed file is ignored; env vars and defaults still apply.
func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.Server.Addr != "" {
		cfg.Server.Addr = fc.Server.Addr
	}
	if fc.Content.PagesURL != "" {
		cfg.Content.PagesURL = fc.Content.PagesURL
	}
	if fc.Content.FaqURL != "" {
		cfg.Content.FaqURL = fc.Content.FaqURL
	}
	if d, err := time.ParseDuration(fc.Content.RequestTimeout); err == nil && fc.Content.RequestTimeout != "" {
		cfg.Content.RequestTimeout = d
	}
	if d, err := time.ParseDuration(fc.Content.RefreshInterval); err == nil && fc.Content.RefreshInterval != "" {
		cfg.Content.RefreshInterval = d
	}
	if fc.Storage.DataDir != "" {
		cfg.Storage.DataDir = fc.Storage.DataDir
	}
	if fc.Storage.WatchSnapshots != nil {
		cfg.Storage.WatchSnapshots = *fc.Storage.WatchSnapshots
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
