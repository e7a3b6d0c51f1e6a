package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL      = "https://cardano-mainnet.blockfrost.io/api/v0"
	DefaultProjectIDEnv = "BLOCKFROST_PROJECT_ID"
)

// Duration lets yaml carry human-readable durations ("1s", "500ms").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type BlockfrostConfig struct {
	BaseURL string `yaml:"base_url"`
	// ProjectIDEnv names the environment variable holding the Blockfrost
	// project key. The key itself never lives in the config file.
	ProjectIDEnv   string   `yaml:"project_id_env"`
	RequestTimeout Duration `yaml:"request_timeout"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	BurstSize         int `yaml:"burst_size"`
}

type Config struct {
	Blockfrost BlockfrostConfig `yaml:"blockfrost"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	// PageDelay is the minimum pause between successive pages of a
	// paginated listing.
	PageDelay Duration `yaml:"page_delay"`
}

func Default() Config {
	return Config{
		Blockfrost: BlockfrostConfig{
			BaseURL:        DefaultBaseURL,
			ProjectIDEnv:   DefaultProjectIDEnv,
			RequestTimeout: Duration(30 * time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			BurstSize:         10,
		},
		PageDelay: Duration(time.Second),
	}
}

// Load reads the yaml config at path, filling unset fields with defaults.
// An empty path returns the defaults. A local .env file is loaded first so the
// project key can live next to the binary.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Blockfrost.BaseURL == "" {
		c.Blockfrost.BaseURL = def.Blockfrost.BaseURL
	}
	if c.Blockfrost.ProjectIDEnv == "" {
		c.Blockfrost.ProjectIDEnv = def.Blockfrost.ProjectIDEnv
	}
	if c.Blockfrost.RequestTimeout <= 0 {
		c.Blockfrost.RequestTimeout = def.Blockfrost.RequestTimeout
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = def.RateLimit.RequestsPerSecond
	}
	if c.RateLimit.BurstSize <= 0 {
		c.RateLimit.BurstSize = def.RateLimit.BurstSize
	}
	if c.PageDelay < 0 {
		c.PageDelay = def.PageDelay
	}
}

// ProjectID resolves the Blockfrost project key from the environment.
func (c Config) ProjectID() (string, error) {
	key := os.Getenv(c.Blockfrost.ProjectIDEnv)
	if key == "" {
		return "", fmt.Errorf("project key not set: export %s", c.Blockfrost.ProjectIDEnv)
	}
	return key, nil
}
