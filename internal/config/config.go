package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"

	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"

	// DefaultPort is used by the in-memory store when PORT is unset.
	DefaultPort = "3001"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Events   EventsConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
	StaticDir          string
	SeedNotes          bool
	RedisURL           string
}

type DatabaseConfig struct {
	Store         string // "memory", "mongo" or "postgres"
	Connection    string // postgres DSN
	MongoURI      string
	MongoDatabase string
}

type CacheConfig struct {
	Backend string // "none", "memory" or "redis"
	TTL     time.Duration
}

type EventsConfig struct {
	Topic   string
	NatsURL string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	store := strings.ToLower(getEnv("NOTE_STORE", StoreMemory))

	port := getEnv("PORT", "")
	if port == "" && store == StoreMemory {
		port = DefaultPort
	}

	return &Config{
		App: AppConfig{
			Port:               port,
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/note_events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			StaticDir:          getEnv("STATIC_DIR", ""),
			SeedNotes:          getEnvAsBool("SEED_NOTES", false),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Store:         store,
			Connection:    getEnv("DB_CONNECTION_STRING", ""),
			MongoURI:      getEnv("MONGODB_URI", ""),
			MongoDatabase: getEnv("MONGODB_DATABASE", "noteApp"),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(getEnv("CACHE_BACKEND", CacheNone)),
			TTL:     time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Events: EventsConfig{
			Topic:   getEnv("EVENT_TOPIC", "note_events"),
			NatsURL: getEnv("NATS_URL", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "notes-be"),
		},
	}
}

// Validate reports every missing or inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Store {
	case StoreMemory:
	case StoreMongo:
		if c.Database.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI is required for the mongo store"))
		}
	case StorePostgres:
		if c.Database.Connection == "" {
			errs = append(errs, errors.New("DB_CONNECTION_STRING is required for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown NOTE_STORE %q", c.Database.Store))
	}

	if c.App.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	} else if _, err := strconv.Atoi(c.App.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be a number, got %q", c.App.Port))
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.App.RedisURL == "" {
			errs = append(errs, errors.New("REDIS_URL is required for the redis cache backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CACHE_BACKEND %q", c.Cache.Backend))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
