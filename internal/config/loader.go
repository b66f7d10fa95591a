package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env, configs/config.yaml, configs/config.<APP_ENVIRONMENT>.yaml
// and environment variables (SERVER_PORT, MONGO_URI, ...), in that order of
// increasing precedence.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if root := findProjectRoot(); root != "" {
		v.AddConfigPath(filepath.Join(root, "configs"))
	}

	return load(v)
}

// LoadFromFile loads configuration from a single yaml file plus environment
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := v.GetString("app.environment")
	v.SetConfigName("config." + env)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading %s config: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	paths := []string{".env", "../.env", "../../.env"}
	if root := findProjectRoot(); root != "" {
		paths = append(paths, filepath.Join(root, ".env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "author-website")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.site_url", "http://localhost:5000")

	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "author_website")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "site:")

	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 12*time.Hour)

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.provider", "log")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.operator_address", "")
	v.SetDefault("mail.region", "us-east-1")
	v.SetDefault("mail.send_timeout", 15*time.Second)

	v.SetDefault("feed.url", "https://medium.com/feed/@chetangabhane")
	v.SetDefault("feed.timeout", 10*time.Second)
	v.SetDefault("feed.cache_ttl", time.Hour)
	v.SetDefault("feed.max_items", 5)
	v.SetDefault("feed.excerpt_length", 150)

	v.SetDefault("assessment.session_ttl", 2*time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5000"})
}

// applyDefaults fills zero values left by an explicit empty config entry
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "5000"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "author_website"
	}
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 10 * time.Second
	}
	if cfg.Feed.CacheTTL == 0 {
		cfg.Feed.CacheTTL = time.Hour
	}
	if cfg.Feed.MaxItems == 0 {
		cfg.Feed.MaxItems = 5
	}
	if cfg.Feed.ExcerptLength == 0 {
		cfg.Feed.ExcerptLength = 150
	}
	if cfg.Assessment.SessionTTL == 0 {
		cfg.Assessment.SessionTTL = 2 * time.Hour
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 12 * time.Hour
	}
	if cfg.Mail.SendTimeout == 0 {
		cfg.Mail.SendTimeout = 15 * time.Second
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "log"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Feed.Timeout < 0 {
		return fmt.Errorf("feed.timeout must be positive")
	}
	if cfg.Feed.CacheTTL < 0 {
		return fmt.Errorf("feed.cache_ttl must be positive")
	}
	if cfg.Feed.MaxItems < 0 {
		return fmt.Errorf("feed.max_items must be positive")
	}
	if cfg.Assessment.SessionTTL < 0 {
		return fmt.Errorf("assessment.session_ttl must be positive")
	}
	if cfg.Mail.Enabled {
		if cfg.Mail.From == "" {
			return fmt.Errorf("mail.from is required when mail is enabled")
		}
		if cfg.Mail.Provider != "ses" && cfg.Mail.Provider != "log" {
			return fmt.Errorf("mail.provider must be ses or log, got %q", cfg.Mail.Provider)
		}
	}
	if cfg.Auth.AdminPasswordHash != "" && cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required when an admin password is set")
	}
	return nil
}
