package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Workable  WorkableConfig
	Sync      SyncConfig
	Auth      AuthConfig
	Telemetry TelemetryConfig
	Log       LogConfig
	Frontend  FrontendConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	URL        string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type WorkableConfig struct {
	APIKey    string
	Subdomain string
	// BaseURL overrides the subdomain-derived endpoint, used against sandboxes.
	BaseURL string
	Timeout time.Duration
}

type SyncConfig struct {
	// Schedule is a robfig/cron spec; empty disables the periodic sync.
	Schedule string
	LockTTL  time.Duration
}

type AuthConfig struct {
	// JWTSecret guards the sync trigger when set.
	JWTSecret string
	Role      string
}

type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

const DefaultWorkableSubdomain = "growthacceleratorstaffing"

// Load reads configuration from the environment, optionally layered over a
// config file at path.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if p := strings.TrimSpace(path); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", p, err)
		}
	}

	var missing []string
	str := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:     str("APP_NAME"),
		Environment: str("APP_ENV"),
		HTTPPort:    str("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		URL:                   str("DATABASE_URL"),
		DBHost:                str("DB_HOST"),
		DBPort:                str("DB_PORT"),
		DBName:                str("DB_NAME"),
		DBUser:                str("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBSSLMode:             str("DB_SSL_MODE"),
		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}
	if cfg.Database.URL == "" {
		if cfg.Database.DBHost == "" {
			missing = append(missing, "DATABASE_URL or DB_HOST")
		}
		if cfg.Database.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
	}

	cfg.Redis = RedisConfig{
		Addr:     str("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Workable = WorkableConfig{
		APIKey:    str("WORKABLE_API_KEY"),
		Subdomain: str("WORKABLE_SUBDOMAIN"),
		BaseURL:   str("WORKABLE_BASE_URL"),
		Timeout:   v.GetDuration("WORKABLE_TIMEOUT"),
	}

	cfg.Sync = SyncConfig{
		Schedule: str("SYNC_SCHEDULE"),
		LockTTL:  v.GetDuration("SYNC_LOCK_TTL"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: v.GetString("AUTH_JWT_SECRET"),
		Role:      str("AUTH_REQUIRED_ROLE"),
	}

	cfg.Telemetry = TelemetryConfig{
		OTLPEndpoint: str("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  str("OTEL_SERVICE_NAME"),
	}

	cfg.Log = LogConfig{
		JSON:  v.GetBool("LOG_JSON"),
		Debug: v.GetBool("LOG_DEBUG"),
	}

	cfg.Frontend = loadFrontend(v)

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "staff-match")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")

	v.SetDefault("REDIS_ADDR", "localhost:6379")

	v.SetDefault("WORKABLE_SUBDOMAIN", DefaultWorkableSubdomain)
	v.SetDefault("WORKABLE_TIMEOUT", "15s")

	v.SetDefault("SYNC_LOCK_TTL", "10m")
	v.SetDefault("AUTH_REQUIRED_ROLE", "service_role")
	v.SetDefault("OTEL_SERVICE_NAME", "staff-match")

	setFrontendDefaults(v)
}

// WorkableBaseURL is the SPI v3 root derived from the subdomain unless overridden.
func (c WorkableConfig) WorkableBaseURL() string {
	if b := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/"); b != "" {
		return b
	}
	sub := strings.TrimSpace(c.Subdomain)
	if sub == "" {
		sub = DefaultWorkableSubdomain
	}
	return fmt.Sprintf("https://%s.workable.com/spi/v3", sub)
}
