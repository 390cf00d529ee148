package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "VEMMIE"

// Config is the full process configuration, built once at startup and passed
// into constructors. Nothing reads the environment after this point.
type Config struct {
	Server struct {
		Port           int      `mapstructure:"port"`
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"server"`
	Shopify struct {
		StoreDomain  string `mapstructure:"store_domain"`
		PrivateToken string `mapstructure:"private_token"`
		APIVersion   string `mapstructure:"api_version"`
	} `mapstructure:"shopify"`
	Cache struct {
		RevalidateSeconds int `mapstructure:"revalidate_seconds"`
	} `mapstructure:"cache"`
	Catalog struct {
		// Strategy selects the collection classifier: "tags" (structured
		// metafields, default) or "title" (static table matched on titles).
		Strategy string `mapstructure:"strategy"`
	} `mapstructure:"catalog"`
	RateLimit struct {
		MaxRequests int           `mapstructure:"max_requests"`
		Window      time.Duration `mapstructure:"window"`
	} `mapstructure:"rate_limit"`
}

// Revalidate returns the advisory cache TTL; zero or negative disables caching.
func (c *Config) Revalidate() time.Duration {
	return time.Duration(c.Cache.RevalidateSeconds) * time.Second
}

// Get reads configuration from the environment (VEMMIE_ prefix, dots become
// underscores) layered over an optional config/config.yaml file.
func Get(logger zerolog.Logger) *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cache.revalidate_seconds", 300)
	v.SetDefault("catalog.strategy", "tags")
	v.SetDefault("rate_limit.max_requests", 100)
	v.SetDefault("rate_limit.window", time.Minute)

	v.AddConfigPath("./config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Fatal().Err(err).Msg("failed to read config file")
		}
	}

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// binding each known key makes the env layer win consistently.
	for _, key := range []string{
		"server.port", "server.allowed_origins",
		"shopify.store_domain", "shopify.private_token", "shopify.api_version",
		"cache.revalidate_seconds", "catalog.strategy",
		"rate_limit.max_requests", "rate_limit.window",
	} {
		if err := v.BindEnv(key); err != nil {
			logger.Fatal().Err(err).Str("key", key).Msg("failed to bind env key")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to unmarshal config")
	}
	return &cfg
}
