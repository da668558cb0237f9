package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns int
}

type ESConfig struct {
	URL      string
	User     string
	Password string
	Index    string
}

type DevProxyConfig struct {
	Addr      string
	StaticDir string
	Prefix    string
	Target    string
}

type Config struct {
	ServiceName string
	LogLevel    string

	ServerAddr string
	UploadDir  string

	DB            DBConfig
	MigrationsDir string

	ES ESConfig

	KafkaBrokers     []string
	OrderEventsTopic string

	DevProxy DevProxyConfig
}

// Load reads .env (when present) and the process environment once.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		ServiceName: EnvDefault("SERVICE_NAME", "storefront"),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		ServerAddr: EnvDefault("SERVER_ADDR", ":8080"),
		UploadDir:  EnvDefault("UPLOAD_DIR", "uploads"),

		DB: DBConfig{
			Driver:   EnvDefault("DB_DRIVER", DriverPostgres),
			URL:      os.Getenv("DATABASE_URL"),
			Host:     EnvDefault("DB_HOST", "localhost"),
			Port:     EnvDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  EnvDefault("DB_SSLMODE", "disable"),

			MaxOpenConns: EnvIntDefault("DB_MAX_OPEN_CONNS", 5),
		},
		MigrationsDir: EnvDefault("MIGRATIONS_DIR", "migrations"),

		ES: ESConfig{
			URL:      os.Getenv("ES_URL"),
			User:     os.Getenv("ES_USER"),
			Password: os.Getenv("ES_PASSWORD"),
			Index:    EnvDefault("ES_INDEX", "product"),
		},

		KafkaBrokers:     CSV(os.Getenv("KAFKA_BROKERS")),
		OrderEventsTopic: EnvDefault("ORDER_EVENTS_TOPIC", "order_events"),

		DevProxy: DevProxyConfig{
			Addr:      EnvDefault("DEV_ADDR", ":5173"),
			StaticDir: EnvDefault("DEV_STATIC_DIR", "web/dist"),
			Prefix:    EnvDefault("DEV_PROXY_PREFIX", "/api"),
			Target:    EnvDefault("DEV_PROXY_TARGET", "http://localhost:8080"),
		},
	}
}

const (
	DriverPostgres = "postgres"
	DriverPQ       = "pq"
	DriverSQLite   = "sqlite"
)

// DSN returns DATABASE_URL when set, otherwise builds one from the DB_* parts.
// For the sqlite driver DB_NAME is the database file path.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Driver == DriverSQLite {
		return c.Name
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
