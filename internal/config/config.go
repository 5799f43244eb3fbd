package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	Trends   TrendsConfig   `yaml:"trends" mapstructure:"trends"`
	Reddit   RedditConfig   `yaml:"reddit" mapstructure:"reddit"`
	Evaluate EvaluateConfig `yaml:"evaluate" mapstructure:"evaluate"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// FetchConfig configures sales-page fetching.
type FetchConfig struct {
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	CacheSize   int     `yaml:"cache_size" mapstructure:"cache_size"`
}

// TrendsConfig configures the search-interest API used for seasonality.
type TrendsConfig struct {
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	Geo       string  `yaml:"geo" mapstructure:"geo"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// RedditConfig configures the community engagement lookup.
type RedditConfig struct {
	Enabled   bool    `yaml:"enabled" mapstructure:"enabled"`
	BaseURL   string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent string  `yaml:"user_agent" mapstructure:"user_agent"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// EvaluateConfig configures batch evaluation behavior.
type EvaluateConfig struct {
	MaxProducts           int `yaml:"max_products" mapstructure:"max_products"`
	MaxConcurrentProducts int `yaml:"max_concurrent_products" mapstructure:"max_concurrent_products"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OFFERSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("fetch.timeout_secs", 5)
	v.SetDefault("fetch.user_agent", "offerscore/1.0")
	v.SetDefault("fetch.rate_limit", 2.0)
	v.SetDefault("fetch.cache_size", 16)
	v.SetDefault("trends.geo", "US")
	v.SetDefault("trends.rate_limit", 1.0)
	v.SetDefault("reddit.enabled", true)
	v.SetDefault("reddit.base_url", "https://www.reddit.com")
	v.SetDefault("reddit.user_agent", "offerscore/1.0")
	v.SetDefault("reddit.rate_limit", 5.0)
	v.SetDefault("evaluate.max_products", 5)
	v.SetDefault("evaluate.max_concurrent_products", 3)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

// Validate checks configuration invariants for the given run mode
// ("evaluate" or "serve").
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
	case "evaluate":
	default:
		return eris.New("config: unknown mode " + mode)
	}

	if c.Evaluate.MaxProducts < 1 || c.Evaluate.MaxProducts > 5 {
		problems = append(problems, "evaluate.max_products must be between 1 and 5")
	}
	if c.Evaluate.MaxConcurrentProducts < 1 || c.Evaluate.MaxConcurrentProducts > 10 {
		problems = append(problems, "evaluate.max_concurrent_products must be between 1 and 10")
	}
	if c.Fetch.TimeoutSecs <= 0 {
		problems = append(problems, "fetch.timeout_secs must be > 0")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}
