package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	CatalogSourceMemory   = "memory"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Account backend drivers
const (
	BackendDriverMemory   = "memory"
	BackendDriverHTTP     = "http"
	BackendDriverPostgres = "postgres"
)

type DBconfig struct {
	URL             string
	MaxConns        int
	MaxConnLifetime time.Duration
	EnsureSchema    bool
}

type RESTconfig struct {
	PORT               string
	CORSAllowedOrigins []string
}

type CatalogConfig struct {
	Source string
	File   string
}

type BackendConfig struct {
	Driver  string
	URL     string
	APIKey  string
	Timeout time.Duration
}

type RabbitMQConfig struct {
	Enabled bool
	URL     string
}

type AuthConfig struct {
	JWTSecretKey           string
	TokenTTL               time.Duration
	SupportWhatsAppNumber  string
	EnforcePhoneValidation bool
	LoginDelay             time.Duration
}

type StdoutLogConfig struct {
	Level string
	JSON  bool
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	Rest         RESTconfig
	Catalog      CatalogConfig
	Backend      BackendConfig
	Database     DBconfig
	RabbitMQ     RabbitMQConfig
	Auth         AuthConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load .env file (path: %v): %w", envPath, err)
		}
		log.Printf("Info: no .env file loaded (path: %v), using the environment only.\n", envPath)
	}

	return FromEnv()
}

// FromEnv builds the configuration from environment variables and validates it.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "ndjimba")

	cfg.Rest.PORT = getEnvAsString("PORT", "8080")
	cfg.Rest.CORSAllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS")

	cfg.Catalog.Source = strings.ToLower(getEnvAsString("CATALOG_SOURCE", CatalogSourceMemory))
	cfg.Catalog.File = os.Getenv("CATALOG_FILE")

	cfg.Backend.Driver = strings.ToLower(getEnvAsString("BACKEND_DRIVER", BackendDriverMemory))
	cfg.Backend.URL = os.Getenv("BACKEND_URL")
	cfg.Backend.APIKey = os.Getenv("BACKEND_API_KEY")
	cfg.Backend.Timeout = getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second)

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.MaxConns = getEnvAsInt("DATABASE_MAX_CONNS", 0)
	cfg.Database.MaxConnLifetime = getEnvAsDuration("DATABASE_MAX_CONN_LIFETIME", 0)
	cfg.Database.EnsureSchema = getEnvAsBool("DATABASE_ENSURE_SCHEMA", false)

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")

	cfg.Auth.JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	cfg.Auth.TokenTTL = getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour)
	cfg.Auth.SupportWhatsAppNumber = getEnvAsString("SUPPORT_WHATSAPP_NUMBER", "33658898531")
	cfg.Auth.EnforcePhoneValidation = getEnvAsBool("AUTH_ENFORCE_PHONE_VALIDATION", false)
	cfg.Auth.LoginDelay = getEnvAsDuration("AUTH_LOGIN_DELAY", 0)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.JSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting required by the selected drivers is present.
func (c *AppConfig) Validate() error {
	var errs []error

	switch c.Catalog.Source {
	case CatalogSourceMemory:
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			errs = append(errs, fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", CatalogSourceFile))
		}
	case CatalogSourcePostgres:
		if c.Database.URL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required when CATALOG_SOURCE=%s", CatalogSourcePostgres))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source))
	}

	switch c.Backend.Driver {
	case BackendDriverMemory:
	case BackendDriverHTTP:
		if c.Backend.URL == "" || c.Backend.APIKey == "" {
			errs = append(errs, fmt.Errorf("BACKEND_URL and BACKEND_API_KEY are required when BACKEND_DRIVER=%s", BackendDriverHTTP))
		}
	case BackendDriverPostgres:
		if c.Database.URL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required when BACKEND_DRIVER=%s", BackendDriverPostgres))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown BACKEND_DRIVER %q", c.Backend.Driver))
	}

	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		errs = append(errs, fmt.Errorf("RABBITMQ_URL is required when RABBITMQ_ENABLED=true"))
	}
	if c.Auth.JWTSecretKey == "" {
		errs = append(errs, fmt.Errorf("JWT_SECRET_KEY environment variable is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TOKEN_TTL must be positive"))
	}
	if c.Auth.LoginDelay < 0 {
		errs = append(errs, fmt.Errorf("AUTH_LOGIN_DELAY cannot be negative"))
	}

	return errors.Join(errs...)
}

// UsesPostgres reports whether any component needs the database pool.
func (c *AppConfig) UsesPostgres() bool {
	return c.Catalog.Source == CatalogSourcePostgres || c.Backend.Driver == BackendDriverPostgres
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
