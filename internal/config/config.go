package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Game     GameConfig
	Events   EventsConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is
	// honored when resolving client addresses. Comma-separated; empty
	// means no proxy is trusted.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"nightmarket"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"dev"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	Name            string        `envconfig:"DB_NAME" default:"nightmarket"`
	MaxConns        int           `envconfig:"DB_MAX_CONNS" default:"10"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE" default:"5m"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// RedisConfig holds Redis settings for the location write-behind buffer.
// When disabled the in-memory buffer is used instead.
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AuthConfig holds session and admin authentication settings.
type AuthConfig struct {
	// APIKey protects the admin endpoints. Must be set.
	APIKey           string        `envconfig:"API_KEY" default:""`
	SessionTTL       time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	SessionCacheSize int           `envconfig:"SESSION_CACHE_SIZE" default:"10000"`
}

// GameConfig holds the operational economy knobs. Formula-level values
// such as the price walk band and the sell spread are compile-time
// constants in their owning packages; the acceptance tests pin them.
type GameConfig struct {
	StartingMoney         int           `envconfig:"GAME_STARTING_MONEY" default:"50000"`
	UpgradeTrustIncrement int           `envconfig:"GAME_UPGRADE_TRUST_INCREMENT" default:"10"`
	PriceRecomputeEvery   time.Duration `envconfig:"GAME_PRICE_RECOMPUTE_EVERY" default:"3h"`
	RestockEvery          time.Duration `envconfig:"GAME_RESTOCK_EVERY" default:"6h"`
	LocationFlushEvery    time.Duration `envconfig:"GAME_LOCATION_FLUSH_EVERY" default:"30s"`
}

// EventsConfig holds event bus delivery settings.
type EventsConfig struct {
	MaxRetries     int           `envconfig:"EVENT_MAX_RETRIES" default:"3"`
	RetryDelay     time.Duration `envconfig:"EVENT_RETRY_DELAY" default:"2s"`
	DeadLetterPath string        `envconfig:"EVENT_DEADLETTER_PATH" default:"data/events.deadletter"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	Dir    string `envconfig:"LOG_DIR" default:"logs"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ConnString returns the PostgreSQL connection string.
func (d *DatabaseConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
	)
}

// Addr returns the Redis address in host:port format.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from the environment. A .env file is honored
// when present but real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Auth.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	g := c.Game
	if g.StartingMoney < 0 {
		return fmt.Errorf("GAME_STARTING_MONEY must not be negative, got %d", g.StartingMoney)
	}
	if g.PriceRecomputeEvery <= 0 {
		return fmt.Errorf("GAME_PRICE_RECOMPUTE_EVERY must be positive, got %v", g.PriceRecomputeEvery)
	}
	if g.RestockEvery <= 0 {
		return fmt.Errorf("GAME_RESTOCK_EVERY must be positive, got %v", g.RestockEvery)
	}
	if g.LocationFlushEvery <= 0 {
		return fmt.Errorf("GAME_LOCATION_FLUSH_EVERY must be positive, got %v", g.LocationFlushEvery)
	}
	return nil
}
