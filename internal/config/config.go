package config

import "time"

// Config is the application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Mail       MailConfig       `mapstructure:"mail"`
	Feed       FeedConfig       `mapstructure:"feed"`
	Assessment AssessmentConfig `mapstructure:"assessment"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	CORS       CORSConfig       `mapstructure:"cors"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	// SiteURL is used for links in outgoing emails
	SiteURL string `mapstructure:"site_url"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MongoConfig selects the record store. An empty URI means in-memory.
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

func (m MongoConfig) Enabled() bool { return m.URI != "" }

// RedisConfig selects the cache backend. An empty address means in-memory.
type RedisConfig struct {
	Address   string `mapstructure:"address"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (r RedisConfig) Enabled() bool { return r.Address != "" }

type AuthConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	// AdminPasswordHash is a bcrypt hash; admin endpoints are closed when empty
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
}

func (a AuthConfig) AdminEnabled() bool {
	return a.AdminPasswordHash != "" && a.JWTSecret != ""
}

type MailConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Provider is "ses" or "log"
	Provider        string        `mapstructure:"provider"`
	From            string        `mapstructure:"from"`
	OperatorAddress string        `mapstructure:"operator_address"`
	Region          string        `mapstructure:"region"`
	SendTimeout     time.Duration `mapstructure:"send_timeout"`
}

type FeedConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	MaxItems      int           `mapstructure:"max_items"`
	ExcerptLength int           `mapstructure:"excerpt_length"`
}

type AssessmentConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
