package config

import (
	"fmt"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the reader settings read from the environment
type Config struct {
	// APIURL is the base of the Hacker News API, without the /v0 suffix
	APIURL          string `env:"HN_API_URL" env-default:"https://hacker-news.firebaseio.com"`
	TopStoriesLimit int    `env:"HN_TOP_STORIES_LIMIT" env-default:"10"`
	// DebugLog is a file path for log output; empty discards logs
	DebugLog  string `env:"HN_DEBUG_LOG"`
	AltScreen bool   `env:"HN_ALT_SCREEN" env-default:"true"`
}

// Load reads .env if present (non-fatal if missing) and then the environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on error
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("HN_API_URL must be an absolute URL, got %q", c.APIURL)
	}
	if c.TopStoriesLimit < 1 || c.TopStoriesLimit > MaxTopStoriesLimit {
		return fmt.Errorf("HN_TOP_STORIES_LIMIT must be between 1 and %d, got %d", MaxTopStoriesLimit, c.TopStoriesLimit)
	}
	return nil
}
