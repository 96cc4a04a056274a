package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	errMissingPublicKey = errors.New("auth.public_key is required")
	errMissingPort      = errors.New("api.port is required")
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Auth     *AuthConfig     `mapstructure:"auth"`
}

type APIConfig struct {
	Environment        string
	Port               string
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, sslMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds the RSA keys as base64 encoded PEM blocks. The private key is
// only needed when this service issues tokens itself.
type AuthConfig struct {
	PublicKey    string        `mapstructure:"public_key"`
	PrivateKey   string        `mapstructure:"private_key"`
	AccessTTL    time.Duration `mapstructure:"access_ttl"`
	RefreshTTL   time.Duration `mapstructure:"refresh_ttl"`
	CookieDomain string        `mapstructure:"cookie_domain"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
}

func (c *AuthConfig) CanIssueTokens() bool {
	return c.PrivateKey != ""
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := unmarshal(v)
	if err != nil {
		return nil, err
	}

	if err = conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

// setDefaults registers every key so that AutomaticEnv can override it, even
// when the file leaves it out.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.allowed_cors_domains", []string{})
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "franchise")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.public_key", "")
	v.SetDefault("auth.private_key", "")
	v.SetDefault("auth.access_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("auth.cookie_domain", "")
	v.SetDefault("auth.cookie_secure", false)
}

func unmarshal(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{
		API:      &APIConfig{},
		Gin:      &GinConfig{},
		Postgres: &PostgresConfig{},
		Redis:    &RedisConfig{},
		Auth:     &AuthConfig{},
	}

	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	if c.API.Port == "" {
		return errMissingPort
	}
	if c.Auth.PublicKey == "" {
		return errMissingPublicKey
	}
	if _, err := base64.StdEncoding.DecodeString(c.Auth.PublicKey); err != nil {
		return fmt.Errorf("auth.public_key is not valid base64: %w", err)
	}
	if c.Auth.PrivateKey != "" {
		if _, err := base64.StdEncoding.DecodeString(c.Auth.PrivateKey); err != nil {
			return fmt.Errorf("auth.private_key is not valid base64: %w", err)
		}
	}

	return nil
}
