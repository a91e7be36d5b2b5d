package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreJSON     = "json"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Taxonomy TaxonomyConfig
	Store    StoreConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
	AllowOrigins string
}

type TaxonomyConfig struct {
	ExpenseFile  string
	IncomeFile   string
	DefaultLabel string
}

type StoreConfig struct {
	Backend    string
	JSONFile   string
	SQLitePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Load reads the configuration from the environment, after loading the first
// .env file found in the working directory or one of its two parents.
func Load() (*Config, error) {
	// .env is optional; plain environment variables work on their own.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	var errs []error
	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30, &errs)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30, &errs)
	bodyLimit := getEnvInt("SERVER_BODY_LIMIT_MB", 10, &errs)

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			BodyLimitMB:  bodyLimit,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		},
		Taxonomy: TaxonomyConfig{
			ExpenseFile:  getEnv("EXPENSE_TAXONOMY_FILE", "expense_classification.json"),
			IncomeFile:   getEnv("INCOME_TAXONOMY_FILE", "income_classification.json"),
			DefaultLabel: getEnv("DEFAULT_LABEL", "No classification"),
		},
		Store: StoreConfig{
			Backend:    strings.ToLower(getEnv("STORE_BACKEND", StoreJSON)),
			JSONFile:   getEnv("STORE_JSON_FILE", "file_store.json"),
			SQLitePath: getEnv("SQLITE_DB_PATH", "data/finsort.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "finsort"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := errors.Join(append(errs, cfg.Validate())...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("SERVER_PORT must be a number, got %q", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_READ_TIMEOUT must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_WRITE_TIMEOUT must be positive"))
	}
	if c.Server.BodyLimitMB <= 0 {
		errs = append(errs, errors.New("SERVER_BODY_LIMIT_MB must be positive"))
	}
	if c.Taxonomy.ExpenseFile == "" || c.Taxonomy.IncomeFile == "" {
		errs = append(errs, errors.New("EXPENSE_TAXONOMY_FILE and INCOME_TAXONOMY_FILE are required"))
	}
	if strings.TrimSpace(c.Taxonomy.DefaultLabel) == "" {
		errs = append(errs, errors.New("DEFAULT_LABEL must not be blank"))
	}

	switch c.Store.Backend {
	case StoreJSON:
		if c.Store.JSONFile == "" {
			errs = append(errs, errors.New("STORE_JSON_FILE is required for the json store"))
		}
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_DB_PATH is required for the sqlite store"))
		}
	case StorePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be one of json, postgres, sqlite, got %q", c.Store.Backend))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", key, raw))
		return defaultValue
	}
	return v
}
