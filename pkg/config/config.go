package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Badges       BadgesConfig
	Sweep        SweepConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KALAKAAR_APP_ENV" required:"true"`
	Port         string `envconfig:"KALAKAAR_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"KALAKAAR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KALAKAAR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"KALAKAAR_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"KALAKAAR_DB_DSN"`
	Driver string `envconfig:"KALAKAAR_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"KALAKAAR_DB_HOST"`
	LegacyPort     int    `envconfig:"KALAKAAR_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"KALAKAAR_DB_USER"`
	LegacyPassword string `envconfig:"KALAKAAR_DB_PASSWORD"`
	LegacyName     string `envconfig:"KALAKAAR_DB_NAME"`
	LegacySSLMode  string `envconfig:"KALAKAAR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"KALAKAAR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"KALAKAAR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"KALAKAAR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"KALAKAAR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"KALAKAAR_REDIS_URL" required:"true"`
	Address      string        `envconfig:"KALAKAAR_REDIS_ADDR"`
	Password     string        `envconfig:"KALAKAAR_REDIS_PASSWORD"`
	DB           int           `envconfig:"KALAKAAR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KALAKAAR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KALAKAAR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KALAKAAR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KALAKAAR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KALAKAAR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"KALAKAAR_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"KALAKAAR_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"KALAKAAR_JWT_EXPIRATION_MINUTES" default:"60"`
}

type BadgesConfig struct {
	BatchConcurrency int           `envconfig:"KALAKAAR_BADGES_BATCH_CONCURRENCY" default:"8"`
	StatsCacheTTL    time.Duration `envconfig:"KALAKAAR_BADGES_STATS_CACHE_TTL" default:"30s"`
}

type SweepConfig struct {
	Interval time.Duration `envconfig:"KALAKAAR_SWEEP_INTERVAL" default:"24h"`
	LockTTL  time.Duration `envconfig:"KALAKAAR_SWEEP_LOCK_TTL" default:"1h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"KALAKAAR_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
