package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration of a tracking node.
// Tags used:
// - mapstructure: environment variable bound by viper
// - default: value used when the variable is missing
// - required: if "true", loading fails when the value is missing
type Config struct {
	// Environment is "production" for JSON logs, anything else for console logs.
	Environment string `mapstructure:"APP_ENV" default:"development"`
	LogLevel    string `mapstructure:"LOG_LEVEL" default:"info"`
	HTTPPort    int    `mapstructure:"HTTP_PORT" default:"8080"`

	Database   DatabaseConfig   `mapstructure:",squash"`
	Registries RegistriesConfig `mapstructure:",squash"`
	Redis      RedisConfig      `mapstructure:",squash"`
	Kafka      KafkaConfig      `mapstructure:",squash"`
}

// DatabaseConfig holds the PostgreSQL connection details.
type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST" default:"localhost"`
	Port     int    `mapstructure:"DB_PORT" default:"5432"`
	User     string `mapstructure:"DB_USER" default:"postgres"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME" default:"tracking"`
	SslMode  string `mapstructure:"DB_SSLMODE" default:"disable"`
}

// DSN returns the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

// RegistriesConfig names the registries hosted by this node and the remote container
// registries items can be forwarded to.
type RegistriesConfig struct {
	CourierAddress   string `mapstructure:"COURIER_REGISTRY_ADDRESS" required:"true"`
	ContainerAddress string `mapstructure:"CONTAINER_REGISTRY_ADDRESS" required:"true"`
	// Directory is a comma separated list of address=baseURL pairs.
	Directory      string        `mapstructure:"REGISTRY_DIRECTORY"`
	HandoffTimeout time.Duration `mapstructure:"HANDOFF_TIMEOUT" default:"10s"`
}

// RedisConfig enables Idempotency-Key handling when URL is set.
type RedisConfig struct {
	URL            string        `mapstructure:"REDIS_URL"`
	IdempotencyTTL time.Duration `mapstructure:"IDEMPOTENCY_TTL" default:"24h"`
}

// KafkaConfig enables the outbox relay when Brokers is set.
type KafkaConfig struct {
	Brokers         []string `mapstructure:"KAFKA_BROKERS"`
	Topic           string   `mapstructure:"KAFKA_TOPIC" default:"tracking.events"`
	OutboxBatchSize int      `mapstructure:"OUTBOX_BATCH_SIZE" default:"100"`
}

// LoadConfig loads dir/.env into the process environment, when present, and reads the
// configuration from environment variables. Variables already set win over the file.
func LoadConfig(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	var config Config

	processTags(v, &config)

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// processTags binds every tagged field to its environment variable and registers defaults.
func processTags(v *viper.Viper, config any) {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			processTags(v, val.Field(i).Addr().Interface())
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		_ = v.BindEnv(key)

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
}

// validateRequired checks that fields marked as required have non-zero values.
func validateRequired(config any) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
