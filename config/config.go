package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultUserAgent is sent with every scrape request
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Config represents the scraper configuration
type Config struct {
	Scraper struct {
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
		MaxItems  int           `yaml:"max_items"`  // Containers inspected per source
		MinOffers int           `yaml:"min_offers"` // Below this the fallback list is used
	} `yaml:"scraper"`

	Sources struct {
		// Enabled lists source ids to scrape. Empty means all.
		Enabled []string          `yaml:"enabled"`
		URLs    map[string]string `yaml:"urls"` // Per source URL overrides
	} `yaml:"sources"`

	Output struct {
		DisplayPath string `yaml:"display_path"`
		AIPath      string `yaml:"ai_path"`
	} `yaml:"output"`

	Publish struct {
		SFTP SFTPConfig `yaml:"sftp"`
	} `yaml:"publish"`

	Notify struct {
		Telegram TelegramConfig `yaml:"telegram"`
	} `yaml:"notify"`
}

// SFTPConfig describes where generated pages are uploaded. Empty Host disables upload.
type SFTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	RemoteDir string `yaml:"remote_dir"`

	// KnownHosts is an OpenSSH known_hosts file holding the server's key.
	// Host keys are only skipped when InsecureIgnoreHostKey is set explicitly.
	KnownHosts            string `yaml:"known_hosts"`
	InsecureIgnoreHostKey bool   `yaml:"insecure_ignore_host_key"`
}

// Enabled reports whether an upload target is configured
func (c SFTPConfig) Enabled() bool {
	return c.Host != ""
}

// TelegramConfig describes the chat that receives a run summary. Empty BotToken disables it.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

// Enabled reports whether a Telegram chat is configured
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != 0
}

// LoadConfig loads configuration from a YAML file.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// GetDefaultConfig returns a default configuration
func GetDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Scraper.UserAgent = DefaultUserAgent
	cfg.Scraper.Timeout = 10 * time.Second
	cfg.Scraper.MaxItems = 5
	cfg.Scraper.MinOffers = 3
	cfg.Output.DisplayPath = "offers_display.html"
	cfg.Output.AIPath = "offers_ai.html"
	cfg.Publish.SFTP.Port = 22
	return cfg
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper.timeout must be positive, got %s", c.Scraper.Timeout)
	}
	if c.Scraper.MaxItems <= 0 {
		return fmt.Errorf("scraper.max_items must be positive, got %d", c.Scraper.MaxItems)
	}
	if c.Scraper.MinOffers < 0 {
		return fmt.Errorf("scraper.min_offers must not be negative, got %d", c.Scraper.MinOffers)
	}
	if c.Output.DisplayPath == "" || c.Output.AIPath == "" {
		return fmt.Errorf("output paths must not be empty")
	}
	if c.Output.DisplayPath == c.Output.AIPath {
		return fmt.Errorf("output.display_path and output.ai_path must differ")
	}
	return nil
}

// SourceEnabled reports whether the source with the given id should be scraped
func (c *Config) SourceEnabled(id string) bool {
	if len(c.Sources.Enabled) == 0 {
		return true
	}
	for _, enabled := range c.Sources.Enabled {
		if enabled == id {
			return true
		}
	}
	return false
}
