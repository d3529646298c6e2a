package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	FeedModeConverter = "rss2json"
	FeedModeDirect    = "direct"
)

type FeedConfig struct {
	Mode         string `yaml:"mode"`
	ConverterURL string `yaml:"converter_url"`
	Timeout      string `yaml:"timeout"`
}

type AIConfig struct {
	Provider string `yaml:"provider"` // "gemini", "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

type ConnectivityConfig struct {
	ProbeAddr string `yaml:"probe_addr"`
	Interval  string `yaml:"interval"`
}

type Config struct {
	LogLevel     string             `yaml:"log_level"`
	Feed         FeedConfig         `yaml:"feed"`
	AI           *AIConfig          `yaml:"ai,omitempty"`
	Connectivity ConnectivityConfig `yaml:"connectivity"`
}

// AIEnabled returns true if an API key is available from config or environment.
func (c *Config) AIEnabled() bool {
	return c.AIKey() != ""
}

// AIKey returns the resolved API key: config first, then PAKNEWS_AI_KEY, then GEMINI_API_KEY.
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	if k := os.Getenv("PAKNEWS_AI_KEY"); k != "" {
		return k
	}
	return os.Getenv("GEMINI_API_KEY")
}

func (c *Config) FeedTimeout() time.Duration {
	d, err := time.ParseDuration(c.Feed.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

func (c *Config) ProbeInterval() time.Duration {
	d, err := time.ParseDuration(c.Connectivity.Interval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "paknews", "config.yaml")
}

// StorePath is the SQLite file holding saved articles and the enrichment cache.
func StorePath() string {
	return filepath.Join(xdg.DataHome, "paknews", "paknews.db")
}

// LogPath is where the TUI writes its log while it owns the terminal.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "paknews", "paknews.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (DefaultConfigPath when empty). Keys missing
// from the file keep their embedded default values.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults are used as-is
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Feed.Mode {
	case FeedModeConverter:
		u, err := url.Parse(cfg.Feed.ConverterURL)
		if err != nil {
			return fmt.Errorf("feed: invalid converter_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed: converter_url scheme must be http or https, got %q", u.Scheme)
		}
	case FeedModeDirect:
	default:
		return fmt.Errorf("feed: unknown mode %q (valid: rss2json, direct)", cfg.Feed.Mode)
	}

	if cfg.Feed.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Feed.Timeout); err != nil {
			return fmt.Errorf("feed: invalid timeout %q: %w", cfg.Feed.Timeout, err)
		}
	}
	if cfg.Connectivity.Interval != "" {
		if _, err := time.ParseDuration(cfg.Connectivity.Interval); err != nil {
			return fmt.Errorf("connectivity: invalid interval %q: %w", cfg.Connectivity.Interval, err)
		}
	}

	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "", "gemini", "claude", "openai":
		default:
			return fmt.Errorf("ai: unknown provider %q (valid: gemini, claude, openai)", cfg.AI.Provider)
		}
	}
	return nil
}
