package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths se buscan en orden si CONFIG_PATH no está seteado.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Store drivers soportados.
const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Store     StoreConfig     `koanf:"store"`
	Mongo     MongoConfig     `koanf:"mongo"`
	Postgres  PostgresConfig  `koanf:"postgres"`
	SQLite    SQLiteConfig    `koanf:"sqlite"`
	Dashboard DashboardConfig `koanf:"dashboard"`
}

type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitRPM    int           `koanf:"rate_limit_rpm" validate:"min=0"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
	App    string `koanf:"app"`
}

type StoreConfig struct {
	Driver           string        `koanf:"driver" validate:"oneof=memory mongo postgres sqlite"`
	SeedPath         string        `koanf:"seed_path"`
	SeedOnEmpty      bool          `koanf:"seed_on_empty"`
	ReadTimeout      time.Duration `koanf:"read_timeout" validate:"gt=0"`
	BreakerFailures  uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerOpenFor   time.Duration `koanf:"breaker_open_for"`
	BreakerHalfOpens uint32        `koanf:"breaker_half_open_requests"`
}

type MongoConfig struct {
	URI        string `koanf:"uri"`
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`
	Username   string `koanf:"username"`
	Password   string `koanf:"password"`
	AuthSource string `koanf:"auth_source"`
}

type PostgresConfig struct {
	DSN string `koanf:"dsn"`
}

type SQLiteConfig struct {
	Path string `koanf:"path"`
}

type DashboardConfig struct {
	PageSize       int           `koanf:"page_size" validate:"min=1,max=500"`
	TopN           int           `koanf:"top_n" validate:"min=1,max=50"`
	CacheSize      int           `koanf:"cache_size" validate:"min=1"`
	SnapshotTTL    time.Duration `koanf:"snapshot_ttl"`
	LocalNarrowing bool          `koanf:"local_narrowing"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			CORSOrigins:     []string{"*"},
			RateLimitRPM:    600,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "rescue-dashboard",
		},
		Store: StoreConfig{
			Driver:           DriverMemory,
			SeedOnEmpty:      true,
			ReadTimeout:      5 * time.Second,
			BreakerFailures:  5,
			BreakerOpenFor:   30 * time.Second,
			BreakerHalfOpens: 1,
		},
		Mongo: MongoConfig{
			Database:   "AAC",
			Collection: "animals",
			AuthSource: "admin",
		},
		SQLite: SQLiteConfig{
			Path: "data/rescue.db",
		},
		Dashboard: DashboardConfig{
			PageSize:    10,
			TopN:        8,
			CacheSize:   16,
			SnapshotTTL: 5 * time.Minute,
		},
	}
}

// Default devuelve la config sin archivo ni entorno (tests y modo dev).
func Default() *Config {
	return defaultConfig()
}

// Load arma la config en capas: defaults -> YAML opcional -> variables de entorno.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := splitList(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate chequea tags y las dependencias entre driver y credenciales.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch c.Store.Driver {
	case DriverMongo:
		if strings.TrimSpace(c.Mongo.URI) == "" {
			return fmt.Errorf("%w: MONGO_URI is required for store driver mongo", ErrInvalidConfig)
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return fmt.Errorf("%w: DB_DSN is required for store driver postgres", ErrInvalidConfig)
		}
	}
	return nil
}

// Addr devuelve el listen address del server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitList convierte "a, b" (env) en []string; un slice de YAML queda igual.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

// envTransformFunc mapea variables de entorno a paths de koanf.
// Las no listadas se ignoran.
func envTransformFunc(key string) string {
	mappings := map[string]string{
		"port":               "server.port",
		"http_port":          "server.port",
		"cors_origins":       "server.cors_origins",
		"rate_limit_rpm":     "server.rate_limit_rpm",
		"http_read_timeout":  "server.read_timeout",
		"http_write_timeout": "server.write_timeout",
		"shutdown_timeout":   "server.shutdown_timeout",

		"log_level":  "log.level",
		"log_format": "log.format",
		"app_name":   "log.app",

		"store_driver":               "store.driver",
		"seed_path":                  "store.seed_path",
		"seed_on_empty":              "store.seed_on_empty",
		"store_read_timeout":         "store.read_timeout",
		"breaker_failures":           "store.breaker_failures",
		"breaker_open_for":           "store.breaker_open_for",
		"breaker_half_open_requests": "store.breaker_half_open_requests",

		"mongo_uri":         "mongo.uri",
		"mongo_database":    "mongo.database",
		"mongo_collection":  "mongo.collection",
		"mongo_user":        "mongo.username",
		"mongo_password":    "mongo.password",
		"mongo_auth_source": "mongo.auth_source",

		"db_dsn":      "postgres.dsn",
		"sqlite_path": "sqlite.path",

		"page_size":           "dashboard.page_size",
		"top_n":               "dashboard.top_n",
		"snapshot_cache_size": "dashboard.cache_size",
		"snapshot_ttl":        "dashboard.snapshot_ttl",
		"local_narrowing":     "dashboard.local_narrowing",
	}
	return mappings[strings.ToLower(key)]
}
