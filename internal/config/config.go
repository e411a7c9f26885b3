package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Matching MatchingConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
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
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

type JWTConfig struct {
	AccessSecret string
	Issuer       string
	AccessTTL    time.Duration
}

type MatchingConfig struct {
	// Workers bounds the scoring fan-out per query.
	Workers int
	// SimilarityPoolFactor pre-limits the similarity candidate pool to
	// limit*factor profiles. 0 scans the whole active population.
	SimilarityPoolFactor int
	CacheTTL             time.Duration
}

type LogConfig struct {
	Level  string
	Pretty bool
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

const (
	DefaultMatchWorkers         = 8
	DefaultSimilarityPoolFactor = 2
	DefaultCacheTTL             = 60 * time.Second
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optInt32 := func(key string, def int32) int32 {
		v := optInt(key, int(def))
		if v > math.MaxInt32 {
			invalid = append(invalid, key)
			return def
		}
		return int32(v)
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          optInt32("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:          optInt32("DB_POOL_MIN_CONNS", 0),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}
	if cfg.Database.DBSSLMode == "" {
		cfg.Database.DBSSLMode = "disable"
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
	}
	cfg.Redis.Enabled = cfg.Redis.Host != ""
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	cfg.JWT = JWTConfig{
		AccessSecret: opt("JWT_ACCESS_SECRET"),
		Issuer:       opt("JWT_ISSUER"),
		AccessTTL:    optDuration("JWT_ACCESS_TTL", 15*time.Minute),
	}

	cfg.Matching = MatchingConfig{
		Workers:              optInt("MATCH_WORKERS", DefaultMatchWorkers),
		SimilarityPoolFactor: optInt("MATCH_SIMILARITY_POOL_FACTOR", DefaultSimilarityPoolFactor),
		CacheTTL:             optDuration("MATCH_CACHE_TTL", DefaultCacheTTL),
	}
	if cfg.Matching.Workers == 0 {
		cfg.Matching.Workers = DefaultMatchWorkers
	}

	cfg.Log = LogConfig{
		Level:  opt("LOG_LEVEL"),
		Pretty: strings.EqualFold(cfg.App.Environment, "development"),
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func (c DatabaseConfig) Configured() bool {
	return c.DBHost != "" && c.DBPort != "" && c.DBName != "" && c.DBUser != ""
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}
