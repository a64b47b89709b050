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
	DB           DBConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"SHOPEASE_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOPEASE_APP_PORT" default:"5001"`
	LogLevel     string `envconfig:"SHOPEASE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPEASE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects the storage engine: "postgres" (pooled server engine)
	// or "sqlite" (file engine). Nothing above pkg/db may branch on it.
	Driver string `envconfig:"SHOPEASE_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"SHOPEASE_DB_DSN"`

	SQLitePath string `envconfig:"SHOPEASE_DB_SQLITE_PATH" default:"shopease.db"`

	LegacyHost     string `envconfig:"SHOPEASE_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPEASE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPEASE_DB_USER"`
	LegacyPassword string `envconfig:"SHOPEASE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPEASE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPEASE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPEASE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPEASE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPEASE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPEASE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPEASE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,https://shopease.vercel.app"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPEASE_AUTO_MIGRATE" default:"false"`
}

// ensureDSN assembles a DSN for whichever engine is selected. The sqlite
// engine only needs a file path; postgres accepts either a full DSN or the
// legacy host/user/name parts.
func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if strings.EqualFold(db.Driver, DriverSQLite) {
		db.DSN = db.SQLitePath
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
