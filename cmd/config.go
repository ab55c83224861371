package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pancakelab/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PANCAKELAB_"

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	HTTP    HTTPConfig    `koanf:"http"`
	Log     LogConfig     `koanf:"log"`
	Store   StoreConfig   `koanf:"store"`
	DB      DBConfig      `koanf:"db"`
	Redis   RedisConfig   `koanf:"redis"`
	Breaker BreakerConfig `koanf:"breaker"`
	Kafka   KafkaConfig   `koanf:"kafka"`
	Jobs    JobsConfig    `koanf:"jobs"`
}

type HTTPConfig struct {
	Port int `koanf:"port"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type StoreConfig struct {
	Driver      string        `koanf:"driver"`
	SQLitePath  string        `koanf:"sqlite_path"`
	LockTimeout time.Duration `koanf:"lock_timeout"`
}

type DBConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SslMode  string `koanf:"sslmode"`
}

// RedisConfig enables the read-through order cache when Addr is set.
type RedisConfig struct {
	Addr string        `koanf:"addr"`
	TTL  time.Duration `koanf:"ttl"`
}

type BreakerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxFailures int           `koanf:"max_failures"`
	Timeout     time.Duration `koanf:"timeout"`
}

// KafkaConfig enables event publication when Brokers is set.
type KafkaConfig struct {
	Brokers string `koanf:"brokers"`
	Topic   string `koanf:"topic"`

	// PublishTimeout bounds the delivery of one event. A write never waits longer for its events.
	PublishTimeout time.Duration `koanf:"publish_timeout"`
}

// BrokerList splits the comma-separated broker addresses.
func (k KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type JobsConfig struct {
	PurgeSchedule  string        `koanf:"purge_schedule"`
	PurgeRetention time.Duration `koanf:"purge_retention"`
	ReportSchedule string        `koanf:"report_schedule"`
}

func defaults() map[string]any {
	return map[string]any{
		"http.port": 8080,

		"log.level":  "info",
		"log.format": "json",

		"store.driver":       StoreMemory,
		"store.sqlite_path":  "pancakelab.db",
		"store.lock_timeout": "5s",

		"db.host":     "localhost",
		"db.port":     "5432",
		"db.user":     "postgres",
		"db.password": "",
		"db.name":     "pancakelab",
		"db.sslmode":  "disable",

		"redis.addr": "",
		"redis.ttl":  "5m",

		"breaker.enabled":      true,
		"breaker.max_failures": 5,
		"breaker.timeout":      "30s",

		"kafka.brokers":         "",
		"kafka.topic":           "pancakelab.order-events",
		"kafka.publish_timeout": "5s",

		"jobs.purge_schedule":  "0 */5 * * * *",
		"jobs.purge_retention": "1h",
		"jobs.report_schedule": "0 * * * * *",
	}
}

// LoadConfig reads the configuration in four layers, later layers winning:
//
//  1. .env in the working directory, if present
//  2. built-in defaults
//  3. the YAML file at path, if path is not empty
//  4. PANCAKELAB_ environment variables, e.g. PANCAKELAB_STORE_SQLITE_PATH -> store.sqlite_path
func LoadConfig(path string) (Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load(".env")

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return Config{}, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// buildEnvLookup maps "store_sqlite_path" to "store.sqlite_path" for every known key.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

// Validate checks every section and returns the joined errors.
func (c Config) Validate() error {
	var errList []error

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("http.port", c.HTTP.Port, 1, 65535))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("log.level",
			fmt.Errorf("must be one of debug, info, warn, error; got %q", c.Log.Level)))
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("log.format",
			fmt.Errorf("must be json or text; got %q", c.Log.Format)))
	}

	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.DB.Host == "" {
			errList = append(errList, errs.NewValueIsRequiredError("db.host"))
		}
		if c.DB.Name == "" {
			errList = append(errList, errs.NewValueIsRequiredError("db.name"))
		}
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			errList = append(errList, errs.NewValueIsRequiredError("store.sqlite_path"))
		}
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("store.driver",
			fmt.Errorf("must be memory, postgres or sqlite; got %q", c.Store.Driver)))
	}

	if c.Store.LockTimeout <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("store.lock_timeout",
			errors.New("must be positive")))
	}

	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("redis.ttl", errors.New("must be positive")))
	}

	if c.Breaker.Enabled {
		if c.Breaker.MaxFailures < 1 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("breaker.max_failures",
				c.Breaker.MaxFailures, 1, "unbounded"))
		}
		if c.Breaker.Timeout <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("breaker.timeout",
				errors.New("must be positive")))
		}
	}

	if len(c.Kafka.BrokerList()) > 0 {
		if c.Kafka.Topic == "" {
			errList = append(errList, errs.NewValueIsRequiredError("kafka.topic"))
		}
		if c.Kafka.PublishTimeout <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("kafka.publish_timeout",
				errors.New("must be positive")))
		}
	}

	if c.Jobs.PurgeSchedule == "" {
		errList = append(errList, errs.NewValueIsRequiredError("jobs.purge_schedule"))
	}
	if c.Jobs.PurgeRetention < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("jobs.purge_retention",
			errors.New("must not be negative")))
	}
	if c.Jobs.ReportSchedule == "" {
		errList = append(errList, errs.NewValueIsRequiredError("jobs.report_schedule"))
	}

	return errors.Join(errList...)
}
