package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv         string               `mapstructure:"app_env"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Kafka          KafkaConfig          `mapstructure:"kafka"`
	Auth           AuthConfig           `mapstructure:"auth"`
	Inventory      InventoryConfig      `mapstructure:"inventory"`
	Dashboard      DashboardConfig      `mapstructure:"dashboard"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	RBAC           RBACConfig           `mapstructure:"rbac"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	Port       string `mapstructure:"port"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type KafkaConfig struct {
	Broker             string        `mapstructure:"broker"`
	ConsumerGroup      string        `mapstructure:"consumer_group"`
	PollInterval       time.Duration `mapstructure:"poll_interval"`
	MaxRetries         int           `mapstructure:"max_retries"`
	MaxPublishAttempts int           `mapstructure:"max_publish_attempts"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

// InventoryConfig points at the stock issuance endpoints.
type InventoryConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DashboardConfig struct {
	PageSize int           `mapstructure:"page_size"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type ReconciliationConfig struct {
	Schedule string `mapstructure:"schedule"`
}

type RBACConfig struct {
	ModelPath string `mapstructure:"model_path"`
}

// env var -> config key. Keys stay flat in the environment (DB_HOST, not
// DATABASE_HOST) so existing .env files keep working.
var envBindings = map[string]string{
	"app_env":                    "APP_ENV",
	"server.port":                "PORT",
	"server.read_timeout":        "SERVER_READ_TIMEOUT",
	"server.write_timeout":       "SERVER_WRITE_TIMEOUT",
	"server.idle_timeout":        "SERVER_IDLE_TIMEOUT",
	"database.host":              "DB_HOST",
	"database.user":              "DB_USER",
	"database.password":          "DB_PASSWORD",
	"database.name":              "DB_NAME",
	"database.port":              "DB_PORT",
	"database.sslmode":           "DB_SSLMODE",
	"database.max_retries":       "DB_MAX_RETRIES",
	"redis.addr":                 "REDIS_ADDR",
	"redis.max_retries":          "REDIS_MAX_RETRIES",
	"kafka.broker":               "KAFKA_BROKER",
	"kafka.consumer_group":       "KAFKA_CONSUMER_GROUP",
	"kafka.poll_interval":        "KAFKA_POLL_INTERVAL",
	"kafka.max_retries":          "KAFKA_MAX_RETRIES",
	"kafka.max_publish_attempts": "KAFKA_MAX_PUBLISH_ATTEMPTS",
	"auth.jwt_secret":            "JWT_SECRET",
	"auth.access_ttl":            "JWT_ACCESS_TTL",
	"auth.refresh_ttl":           "JWT_REFRESH_TTL",
	"inventory.base_url":         "INVENTORY_BASE_URL",
	"inventory.timeout":          "INVENTORY_TIMEOUT",
	"dashboard.page_size":        "DASHBOARD_PAGE_SIZE",
	"dashboard.cache_ttl":        "DASHBOARD_CACHE_TTL",
	"reconciliation.schedule":    "RECONCILIATION_SCHEDULE",
	"rbac.model_path":            "RBAC_MODEL_PATH",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 5)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.max_retries", 5)
	v.SetDefault("kafka.consumer_group", "go-invmis-issuance")
	v.SetDefault("kafka.poll_interval", 3*time.Second)
	v.SetDefault("kafka.max_retries", 5)
	v.SetDefault("kafka.max_publish_attempts", 10)
	v.SetDefault("auth.access_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("inventory.timeout", 10*time.Second)
	v.SetDefault("dashboard.page_size", 5)
	v.SetDefault("dashboard.cache_ttl", 2*time.Minute)
	v.SetDefault("reconciliation.schedule", "@every 15m")
	v.SetDefault("rbac.model_path", "internal/rbac/infra/model.conf")
}

// Load builds the configuration from defaults, an optional config file and
// the process environment (environment wins).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Dashboard.PageSize <= 0 {
		return fmt.Errorf("invalid dashboard page size: %d", c.Dashboard.PageSize)
	}
	if c.Database.MaxRetries <= 0 {
		return fmt.Errorf("invalid database max retries: %d", c.Database.MaxRetries)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
