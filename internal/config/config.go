package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"github.com/michaeljohnaustria/my-garden/internal/auth"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Tracing  TracingConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `validate:"required"`
	Env                   string `validate:"required"`
	Host                  string
	Port                  string `validate:"required,numeric"`
	Version               string
	RequestTimeoutSeconds int `validate:"min=0"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32 `validate:"min=0"`
	MinConns       int32 `validate:"min=0"`
	RunMigrations  bool
	MigrationsDir  string
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32

	// ConnectAttempts bounds the startup ping retries.
	ConnectAttempts int `validate:"min=1"`
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int `validate:"min=0,max=15"`
	EventsChannel string

	// PublishTimeoutMillis bounds each change feed publish.
	PublishTimeoutMillis int `validate:"min=1"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `validate:"oneof=debug info warn error dpanic panic fatal"`
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret    string `validate:"required"`
	JWTAlgorithm string `validate:"oneof=HS256 HS384 HS512"`

	// TokenTTLMinutes of 0 issues tokens without an exp claim.
	TokenTTLMinutes   int    `validate:"min=0"`
	AdminUsername     string `validate:"required"`
	AdminPassword     string
	AdminPasswordHash string
	AdminRole         string   `validate:"required"`
	WriteRoles        []string `validate:"required,min=1,dive,required"`
	BcryptCost        int      `validate:"min=4,max=31"`
}

// TracingConfig configures the OTLP trace exporter. An empty endpoint disables export.
type TracingConfig struct {
	OTLPEndpoint string
	Insecure     bool
	SampleRatio  float64 `validate:"min=0,max=1"`
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	sampleRatio, err := strconv.ParseFloat(getEnv("OTEL_TRACES_SAMPLE_RATIO", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OTEL_TRACES_SAMPLE_RATIO: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "garden-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:             os.Getenv("POSTGRES_DSN"),
			MaxConns:        int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:        int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:   getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			MigrationsDir:   getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
			ConnMaxIdleSec:  int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec:  int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
			ConnectAttempts: getEnvAsInt("POSTGRES_CONNECT_ATTEMPTS", 5),
		},
		Redis: RedisConfig{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			EventsChannel: getEnv("REDIS_EVENTS_CHANNEL", "garden.events"),

			PublishTimeoutMillis: getEnvAsInt("REDIS_PUBLISH_TIMEOUT_MS", 500),
		},
		Logger: LoggerConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("AUTH_JWT_SECRET", "dev-secret"),
			JWTAlgorithm:      strings.ToUpper(getEnv("AUTH_JWT_ALGORITHM", "HS256")),
			TokenTTLMinutes:   getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 0),
			AdminUsername:     getEnv("AUTH_ADMIN_USERNAME", "mich"),
			AdminPassword:     getEnv("AUTH_ADMIN_PASSWORD", "pass"),
			AdminPasswordHash: os.Getenv("AUTH_ADMIN_PASSWORD_HASH"),
			AdminRole:         getEnv("AUTH_ADMIN_ROLE", "admin"),
			WriteRoles:        getEnvAsList("AUTH_WRITE_ROLES", []string{"admin"}),
			BcryptCost:        getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		Tracing: TracingConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:     getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio:  sampleRatio,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the assembled configuration against its struct constraints.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Auth.AdminPassword == "" && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("invalid config: AUTH_ADMIN_PASSWORD or AUTH_ADMIN_PASSWORD_HASH required")
	}
	if c.Auth.AdminPasswordHash != "" && !auth.IsBcryptHash(c.Auth.AdminPasswordHash) {
		return fmt.Errorf("invalid config: AUTH_ADMIN_PASSWORD_HASH is not a bcrypt hash")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// PublishTimeout returns the deadline applied to a single change feed publish.
func (r RedisConfig) PublishTimeout() time.Duration {
	return time.Duration(r.PublishTimeoutMillis) * time.Millisecond
}

// TokenTTL returns the token lifetime; zero means tokens never expire.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvAsList splits a comma separated value, dropping blanks and duplicates.
func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	items := lo.FilterMap(strings.Split(val, ","), func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
	if len(items) == 0 {
		return fallback
	}
	return lo.Uniq(items)
}
