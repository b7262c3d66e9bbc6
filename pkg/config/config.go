package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "MEDINA"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MEDINA_DB_DSN"
	EnvDBHost = "MEDINA_DB_HOST"
	EnvDBUser = "MEDINA_DB_USER"
	EnvDBName = "MEDINA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Admin        AdminConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Orders       OrdersConfig
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
	Env          string `envconfig:"MEDINA_APP_ENV" required:"true"`
	Port         string `envconfig:"MEDINA_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"MEDINA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MEDINA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"MEDINA_DB_DSN"`

	LegacyHost     string `envconfig:"MEDINA_DB_HOST"`
	LegacyPort     int    `envconfig:"MEDINA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MEDINA_DB_USER"`
	LegacyPassword string `envconfig:"MEDINA_DB_PASSWORD"`
	LegacyName     string `envconfig:"MEDINA_DB_NAME"`
	LegacySSLMode  string `envconfig:"MEDINA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MEDINA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MEDINA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MEDINA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MEDINA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// AdminConfig holds the single back-office identity. The admin password is
// never stored in plaintext, only as an Argon2id hash minted offline.
type AdminConfig struct {
	Email        string `envconfig:"MEDINA_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"MEDINA_ADMIN_PASSWORD_HASH" required:"true"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MEDINA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MEDINA_JWT_ISSUER" default:"medina-backend"`
	ExpirationMinutes int    `envconfig:"MEDINA_JWT_EXPIRATION_MINUTES" default:"720"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MEDINA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MEDINA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MEDINA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MEDINA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MEDINA_ARGON_KEY_LEN" default:"32"`
}

// OrdersConfig carries the checkout workflow policy switches.
type OrdersConfig struct {
	// DecrementStock controls whether order creation decrements the stock
	// of each referenced product. Legacy revisions disagreed on this, so it
	// is an explicit policy. Defaults to on.
	DecrementStock bool `envconfig:"MEDINA_ORDERS_DECREMENT_STOCK" default:"true"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MEDINA_AUTO_MIGRATE" default:"false"`
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
